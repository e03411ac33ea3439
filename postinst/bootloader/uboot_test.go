package bootloader

import (
	"testing"

	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/log/testlogger"
)

func TestUBootCopiesScript(t *testing.T) {
	tree := makeTestTree(t, "/dev/mmcblk0p3", firmware.TypeUBoot)
	script := "\x27\x05\x19\x56binary script\x00\xff"
	tree.writeRoot(t, "boot/boot.scr.uimg", script)
	installer, err := New(firmware.TypeUBoot, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := installer.Install(tree.plan, testlogger.New(t)); err != nil {
		t.Fatal(err)
	}
	if got := tree.readBoot(t, "u-boot/boot.scr.uimg"); got != script {
		t.Errorf("script: %q", got)
	}
}

func TestUBootMissingScript(t *testing.T) {
	tree := makeTestTree(t, "/dev/mmcblk0p3", firmware.TypeUBoot)
	installer, err := New(firmware.TypeUBoot, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := installer.Install(tree.plan, testlogger.New(t)); err != nil {
		t.Fatal(err)
	}
	if files := listFiles(t, tree.bootDir); len(files) != 0 {
		t.Errorf("files written: %v", files)
	}
}
