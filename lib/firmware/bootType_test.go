package firmware

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cloud-Foundations/postinst/lib/errors"
)

func TestParseKernelCmdline(t *testing.T) {
	var tests = []struct {
		cmdline string
		arch    string
		want    Type
	}{
		{"cros_secure console=tty0", "amd64", TypeSecure},
		{"cros_secure cros_legacy cros_efi", "amd64", TypeSecure},
		{"cros_legacy root=/dev/sda3", "amd64", TypeLegacy},
		{"cros_legacy cros_efi", "amd64", TypeLegacy},
		{"cros_legacy", "arm", TypeUBoot},
		{"cros_legacy", "arm64", TypeUBoot},
		{"quiet cros_efi", "amd64", TypeEFI},
		{"cros_efi", "arm64", TypeEFI},
	}
	for _, test := range tests {
		got, err := ParseKernelCmdline(test.cmdline, test.arch)
		if err != nil {
			t.Errorf("%q: %s", test.cmdline, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q on %s: %s != %s", test.cmdline, test.arch, got,
				test.want)
		}
	}
}

func TestParseKernelCmdlineNoMarker(t *testing.T) {
	_, err := ParseKernelCmdline("console=ttyS0 root=/dev/sda3", "amd64")
	if !errors.IsDetectionError(err) {
		t.Fatalf("expected detection error, got: %v", err)
	}
}

func TestDetect(t *testing.T) {
	procDir := t.TempDir()
	if _, err := Detect(procDir); !errors.IsDetectionError(err) {
		t.Fatalf("missing cmdline: expected detection error, got: %v", err)
	}
	err := os.WriteFile(filepath.Join(procDir, "cmdline"),
		[]byte("BOOT_IMAGE=vmlinuz cros_secure\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	if firmwareType, err := Detect(procDir); err != nil {
		t.Fatal(err)
	} else if firmwareType != TypeSecure {
		t.Fatalf("firmware type: %s", firmwareType)
	}
}

func TestTypeFlag(t *testing.T) {
	var firmwareType Type
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.Var(&firmwareType, "firmwareType", "")
	if err := flagSet.Parse([]string{"-firmwareType=efi"}); err != nil {
		t.Fatal(err)
	}
	if firmwareType != TypeEFI {
		t.Fatalf("firmware type: %s", firmwareType)
	}
	if err := firmwareType.Set("bios"); err == nil {
		t.Fatal("bogus firmware type accepted")
	}
	if err := firmwareType.Set("auto"); err != nil || firmwareType != TypeUnknown {
		t.Fatalf("auto: %s, %v", firmwareType, err)
	}
}
