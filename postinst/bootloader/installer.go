package bootloader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/fsutil"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

func newInstaller(firmwareType firmware.Type,
	options Options) (Installer, error) {
	switch firmwareType {
	case firmware.TypeSecure:
		return secureInstaller{}, nil
	case firmware.TypeLegacy:
		switch options.LegacyBootloader {
		case "", LegacySyslinux:
			return &syslinuxInstaller{label: options.SyslinuxLabel}, nil
		case LegacyPyGrub:
			return pygrubInstaller{}, nil
		}
		return nil, fmt.Errorf("unknown legacy bootloader: %s",
			options.LegacyBootloader)
	case firmware.TypeEFI:
		return grubInstaller{}, nil
	case firmware.TypeUBoot:
		return ubootInstaller{}, nil
	}
	return nil, fmt.Errorf("no bootloader installer for firmware type: %s",
		firmwareType)
}

// copyFile copies sourceFile to destFile, creating the destination directory
// if needed. The destination is replaced atomically.
func copyFile(destFile, sourceFile string) error {
	if err := os.MkdirAll(filepath.Dir(destFile), fsutil.DirPerms); err != nil {
		return errors.NewIoError("creating directory", filepath.Dir(destFile),
			err)
	}
	err := fsutil.CopyFile(destFile, sourceFile, fsutil.PublicFilePerms)
	if err != nil {
		return errors.NewIoError("copying "+sourceFile, destFile, err)
	}
	return nil
}

func checkMountPoints(plan *install.Plan) error {
	if plan.Root.MountPoint == "" {
		return errors.NewConfigurationError(errors.ReasonMissingInput,
			"root partition mount point")
	}
	if plan.Boot.MountPoint == "" {
		return errors.NewConfigurationError(errors.ReasonMissingInput,
			"boot partition mount point")
	}
	return nil
}
