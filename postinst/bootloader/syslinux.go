package bootloader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/fsutil"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

type syslinuxInstaller struct {
	label string
}

type copyJob struct {
	source string
	dest   string
}

func (i *syslinuxInstaller) Install(plan *install.Plan,
	logger log.DebugLogger) error {
	if err := checkMountPoints(plan); err != nil {
		return err
	}
	rootDir := plan.Root.MountPoint
	bootDir := plan.Boot.MountPoint
	slot := string(plan.Slot)
	jobs := []copyJob{
		{
			filepath.Join(rootDir, "boot", "grub", "menu.lst."+slot),
			filepath.Join(bootDir, "boot", "grub", "menu.lst"),
		},
		{
			filepath.Join(rootDir, "boot", "vmlinuz"),
			filepath.Join(bootDir, "syslinux", "vmlinuz."+slot),
		},
		{
			filepath.Join(rootDir, "boot", "syslinux", "root."+slot+".cfg"),
			filepath.Join(bootDir, "syslinux", "root."+slot+".cfg"),
		},
	}
	// Check every source before writing anything.
	for _, job := range jobs {
		if _, err := os.Stat(job.source); err != nil {
			return errors.NewIoError("reading", job.source, err)
		}
	}
	for _, job := range jobs {
		logger.Debugf(0, "copying %s to %s\n", job.source, job.dest)
		if err := copyFile(job.dest, job.source); err != nil {
			return err
		}
	}
	defaultFile := filepath.Join(bootDir, "syslinux", "default.cfg")
	contents := fmt.Sprintf("DEFAULT %s.%s\n", i.label, slot)
	err := fsutil.WriteFile(defaultFile, []byte(contents),
		fsutil.PublicFilePerms)
	if err != nil {
		return errors.NewIoError("writing", defaultFile, err)
	}
	logger.Printf("syslinux will boot %s.%s\n", i.label, slot)
	return nil
}

func (i *syslinuxInstaller) NeedsBootPartition() bool {
	return true
}

func (i *syslinuxInstaller) String() string {
	return "syslinux"
}
