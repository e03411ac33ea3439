package bootloader

import (
	"os"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/fsutil"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

// pygrubInstaller serves paravirtualised guests whose host reads the
// syslinux configuration. Existing files on the boot partition are kept.
type pygrubInstaller struct{}

func (pygrubInstaller) Install(plan *install.Plan,
	logger log.DebugLogger) error {
	if err := checkMountPoints(plan); err != nil {
		return err
	}
	sourceDir := filepath.Join(plan.Root.MountPoint, "boot", "syslinux")
	destDir := filepath.Join(plan.Boot.MountPoint, "syslinux")
	if _, err := os.Stat(sourceDir); err != nil {
		return errors.NewIoError("reading", sourceDir, err)
	}
	logger.Debugf(0, "merging %s into %s\n", sourceDir, destDir)
	if err := fsutil.CopyTreeNoClobber(destDir, sourceDir); err != nil {
		return errors.NewIoError("merging "+sourceDir, destDir, err)
	}
	return nil
}

func (pygrubInstaller) NeedsBootPartition() bool {
	return true
}

func (pygrubInstaller) String() string {
	return "pygrub"
}
