package install

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/google/go-cmp/cmp"
)

func TestConfigure(t *testing.T) {
	var tests = []struct {
		device string
		layout Layout
		want   Plan
	}{
		{"/dev/sda3", LayoutRoot, Plan{
			Slot: SlotA,
			Root: Partition{BaseDevice: "/dev/sda", Number: 3,
				Device: "/dev/sda3", MountPoint: "/mnt/root"},
			Boot: Partition{BaseDevice: "/dev/sda", Number: 1,
				Device: "/dev/sda1"},
			FirmwareType: firmware.TypeLegacy,
			Layout:       "root",
		}},
		{"/dev/sda4", LayoutRoot, Plan{
			Slot: SlotB,
			Root: Partition{BaseDevice: "/dev/sda", Number: 4,
				Device: "/dev/sda4", MountPoint: "/mnt/root"},
			Boot: Partition{BaseDevice: "/dev/sda", Number: 1,
				Device: "/dev/sda1"},
			FirmwareType: firmware.TypeLegacy,
			Layout:       "root",
		}},
		{"/dev/sda3", LayoutKernelRoot, Plan{
			Slot: SlotA,
			Root: Partition{BaseDevice: "/dev/sda", Number: 3,
				Device: "/dev/sda3", MountPoint: "/mnt/root"},
			Kernel: Partition{BaseDevice: "/dev/sda", Number: 2,
				Device: "/dev/sda2"},
			Boot: Partition{BaseDevice: "/dev/sda", Number: 12,
				Device: "/dev/sda12"},
			FirmwareType: firmware.TypeLegacy,
			Layout:       "kernel-root",
		}},
		{"/dev/mmcblk0p5", LayoutKernelRoot, Plan{
			Slot: SlotB,
			Root: Partition{BaseDevice: "/dev/mmcblk0", Number: 5,
				Device: "/dev/mmcblk0p5", MountPoint: "/mnt/root"},
			Kernel: Partition{BaseDevice: "/dev/mmcblk0", Number: 4,
				Device: "/dev/mmcblk0p4"},
			Boot: Partition{BaseDevice: "/dev/mmcblk0", Number: 12,
				Device: "/dev/mmcblk0p12"},
			FirmwareType: firmware.TypeLegacy,
			Layout:       "kernel-root",
		}},
	}
	for _, test := range tests {
		plan, err := Configure(Params{
			InstallDevice:    test.device,
			InstallDirectory: "/mnt/root",
			Layout:           test.layout,
			FirmwareType:     firmware.TypeLegacy,
		})
		if err != nil {
			t.Errorf("%s: %s", test.device, err)
			continue
		}
		if diff := cmp.Diff(test.want, *plan); diff != "" {
			t.Errorf("%s (%s): mismatch (-want +got):\n%s",
				test.device, test.layout.Name, diff)
		}
	}
}

func TestConfigureInvalidTarget(t *testing.T) {
	var tests = []struct {
		device string
		layout Layout
	}{
		{"/dev/sda2", LayoutRoot},
		{"/dev/sda5", LayoutRoot},
		{"/dev/sda4", LayoutKernelRoot},
		{"/dev/sda", LayoutRoot},
	}
	for _, test := range tests {
		_, err := Configure(Params{
			InstallDevice: test.device,
			Layout:        test.layout,
			FirmwareType:  firmware.TypeEFI,
			LookupGUID: func(string, uint) (string, error) {
				t.Fatal("GUID looked up for invalid target")
				return "", nil
			},
		})
		if !perrors.IsInvalidTargetError(err) {
			t.Errorf("%s (%s): expected invalid target error, got: %v",
				test.device, test.layout.Name, err)
		}
	}
}

func TestConfigureDetectsFirmware(t *testing.T) {
	procDir := t.TempDir()
	err := os.WriteFile(filepath.Join(procDir, "cmdline"),
		[]byte("root=/dev/sda3 cros_efi\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	var lookedUp string
	plan, err := Configure(Params{
		InstallDevice: "/dev/sda3",
		ProcDirectory: procDir,
		LookupGUID: func(baseDevice string, number uint) (string, error) {
			lookedUp = MakePartitionDevice(baseDevice, number)
			return "1f2e3d4c-0000-4000-8000-000000000003", nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if plan.FirmwareType != firmware.TypeEFI {
		t.Errorf("firmware type: %s", plan.FirmwareType)
	}
	if lookedUp != "/dev/sda3" {
		t.Errorf("looked up: %s", lookedUp)
	}
	if plan.Root.UUID != "1f2e3d4c-0000-4000-8000-000000000003" {
		t.Errorf("UUID: %s", plan.Root.UUID)
	}
	if plan.Layout != "root" {
		t.Errorf("default layout: %s", plan.Layout)
	}
}

func TestConfigureDetectionFailure(t *testing.T) {
	_, err := Configure(Params{
		InstallDevice: "/dev/sda3",
		ProcDirectory: t.TempDir(),
	})
	if !perrors.IsDetectionError(err) {
		t.Fatalf("expected detection error, got: %v", err)
	}
}

func TestConfigureLookupFailure(t *testing.T) {
	_, err := Configure(Params{
		InstallDevice: "/dev/sda3",
		FirmwareType:  firmware.TypeEFI,
		LookupGUID: func(string, uint) (string, error) {
			return "", errors.New("no table")
		},
	})
	var ioErr *perrors.IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IoError, got: %v", err)
	}
}

func TestLayoutFlag(t *testing.T) {
	layout := LayoutRoot
	if err := layout.Set("kernel-root"); err != nil {
		t.Fatal(err)
	}
	if layout.String() != "kernel-root" || layout.BootNumber != 12 {
		t.Errorf("layout: %+v", layout)
	}
	if err := layout.Set("three-slot"); err == nil {
		t.Error("unknown layout accepted")
	}
}

func TestConfigureEfiNeedsGUID(t *testing.T) {
	var tests = []struct {
		name       string
		lookupGUID GUIDLookup
	}{
		{"no lookup", nil},
		{"empty GUID", func(string, uint) (string, error) { return "", nil }},
	}
	for _, test := range tests {
		_, err := Configure(Params{
			InstallDevice: "/dev/sda3",
			FirmwareType:  firmware.TypeEFI,
			LookupGUID:    test.lookupGUID,
		})
		var configErr *perrors.ConfigurationError
		if !errors.As(err, &configErr) {
			t.Errorf("%s: expected ConfigurationError, got: %v", test.name, err)
		}
	}
}

func TestDryRunEntries(t *testing.T) {
	var tests = []struct {
		layout  Layout
		numbers []uint
	}{
		{LayoutRoot, []uint{3, 4}},
		{Layout{}, []uint{3, 4}},
		{LayoutKernelRoot, []uint{3, 2, 5, 4}},
	}
	for _, test := range tests {
		entries := test.layout.DryRunEntries()
		var numbers []uint
		for _, entry := range entries {
			numbers = append(numbers, entry.Number)
		}
		if diff := cmp.Diff(test.numbers, numbers); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", test.layout.Name, diff)
		}
		if diff := cmp.Diff(entries, test.layout.DryRunEntries()); diff != "" {
			t.Errorf("%s: GUIDs not stable:\n%s", test.layout.Name, diff)
		}
	}
}
