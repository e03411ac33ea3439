package bootloader

import (
	"errors"
	"testing"

	perrors "github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/log/testlogger"
)

func TestPyGrubMerge(t *testing.T) {
	tree := makeTestTree(t, "/dev/sda3", firmware.TypeLegacy)
	tree.writeRoot(t, "boot/syslinux/root.A.cfg", "new A\n")
	tree.writeRoot(t, "boot/syslinux/root.B.cfg", "new B\n")
	tree.writeRoot(t, "boot/syslinux/boot_kernel.cfg", "kernel\n")
	tree.writeBoot(t, "syslinux/root.B.cfg", "old B\n")
	installer, err := New(firmware.TypeLegacy,
		Options{LegacyBootloader: LegacyPyGrub})
	if err != nil {
		t.Fatal(err)
	}
	if err := installer.Install(tree.plan, testlogger.New(t)); err != nil {
		t.Fatal(err)
	}
	expected := map[string]string{
		"syslinux/root.A.cfg":      "new A\n",
		"syslinux/root.B.cfg":      "old B\n",
		"syslinux/boot_kernel.cfg": "kernel\n",
	}
	for name, want := range expected {
		if got := tree.readBoot(t, name); got != want {
			t.Errorf("%s: %q != %q", name, got, want)
		}
	}
}

func TestPyGrubMissingSource(t *testing.T) {
	tree := makeTestTree(t, "/dev/sda3", firmware.TypeLegacy)
	installer, err := New(firmware.TypeLegacy,
		Options{LegacyBootloader: LegacyPyGrub})
	if err != nil {
		t.Fatal(err)
	}
	err = installer.Install(tree.plan, testlogger.New(t))
	var ioErr *perrors.IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IoError, got: %v", err)
	}
}
