package bootloader

import (
	"testing"

	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/log/testlogger"
)

func TestNew(t *testing.T) {
	var tests = []struct {
		firmwareType firmware.Type
		legacy       string
		name         string
		needsBoot    bool
	}{
		{firmware.TypeSecure, "", "secure", false},
		{firmware.TypeLegacy, "", "syslinux", true},
		{firmware.TypeLegacy, LegacySyslinux, "syslinux", true},
		{firmware.TypeLegacy, LegacyPyGrub, "pygrub", true},
		{firmware.TypeEFI, "", "grub", true},
		{firmware.TypeUBoot, "", "uboot", true},
	}
	for _, test := range tests {
		installer, err := New(test.firmwareType,
			Options{LegacyBootloader: test.legacy})
		if err != nil {
			t.Errorf("%s: %s", test.firmwareType, err)
			continue
		}
		if installer.String() != test.name {
			t.Errorf("%s: installer: %s", test.firmwareType, installer)
		}
		if installer.NeedsBootPartition() != test.needsBoot {
			t.Errorf("%s: NeedsBootPartition: %v", test.firmwareType,
				installer.NeedsBootPartition())
		}
	}
	if _, err := New(firmware.TypeUnknown, Options{}); err == nil {
		t.Error("installer for unknown firmware")
	}
	if _, err := New(firmware.TypeLegacy,
		Options{LegacyBootloader: "lilo"}); err == nil {
		t.Error("unknown legacy bootloader accepted")
	}
}

func TestSecureInstallerWritesNothing(t *testing.T) {
	tree := makeTestTree(t, "/dev/sda3", firmware.TypeSecure)
	installer, err := New(firmware.TypeSecure, Options{})
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
