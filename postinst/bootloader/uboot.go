package bootloader

import (
	"os"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

const bootScript = "boot.scr.uimg"

type ubootInstaller struct{}

func (ubootInstaller) Install(plan *install.Plan,
	logger log.DebugLogger) error {
	if err := checkMountPoints(plan); err != nil {
		return err
	}
	source := filepath.Join(plan.Root.MountPoint, "boot", bootScript)
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			logger.Printf("no U-Boot script: %s, nothing to install\n", source)
			return nil
		}
		return errors.NewIoError("reading", source, err)
	}
	dest := filepath.Join(plan.Boot.MountPoint, "u-boot", bootScript)
	logger.Debugf(0, "copying %s to %s\n", source, dest)
	return copyFile(dest, source)
}

func (ubootInstaller) NeedsBootPartition() bool {
	return true
}

func (ubootInstaller) String() string {
	return "uboot"
}
