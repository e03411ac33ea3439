package firmware

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/errors"
)

var typeToText = map[Type]string{
	TypeUnknown: "auto",
	TypeSecure:  "secure",
	TypeLegacy:  "legacy",
	TypeEFI:     "efi",
	TypeUBoot:   "uboot",
}

func detect(procDirectory string) (Type, error) {
	filename := filepath.Join(procDirectory, "cmdline")
	data, err := os.ReadFile(filename)
	if err != nil {
		return TypeUnknown, errors.NewDetectionError(
			"cannot read kernel command line", err)
	}
	return parseKernelCmdline(string(data), runtime.GOARCH)
}

func parseKernelCmdline(cmdline, arch string) (Type, error) {
	if strings.Contains(cmdline, "cros_secure") {
		return TypeSecure, nil
	}
	if strings.Contains(cmdline, "cros_legacy") {
		if arch == "arm" || arch == "arm64" {
			return TypeUBoot, nil
		}
		return TypeLegacy, nil
	}
	if strings.Contains(cmdline, "cros_efi") {
		return TypeEFI, nil
	}
	return TypeUnknown, errors.NewDetectionError(
		"no firmware marker in kernel command line", nil)
}

func (t *Type) set(value string) error {
	if value == "" {
		*t = TypeUnknown
		return nil
	}
	for key, text := range typeToText {
		if value == text {
			*t = key
			return nil
		}
	}
	return fmt.Errorf("unknown firmware type: %s", value)
}

func (t Type) string() string {
	if text, ok := typeToText[t]; ok {
		return text
	}
	return fmt.Sprintf("Type(%d)", uint(t))
}
