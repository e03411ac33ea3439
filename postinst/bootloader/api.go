/*
Package bootloader installs the boot menu configuration which makes the
firmware's bootloader start the newly installed slot.

There is one Installer per firmware type. Secure firmware chooses the slot
from the partition table alone, so its Installer does nothing. The others
rewrite files on the boot partition, which the caller must mount at
plan.Boot.MountPoint before calling Install.
*/
package bootloader

import (
	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

const (
	LegacySyslinux = "syslinux"
	LegacyPyGrub   = "pygrub"
)

type Installer interface {
	Install(plan *install.Plan, logger log.DebugLogger) error
	NeedsBootPartition() bool
	String() string
}

type Options struct {
	LegacyBootloader string // LegacySyslinux (the default) or LegacyPyGrub.
	SyslinuxLabel    string // Defaults to constants.DefaultSyslinuxLabel.
}

// New returns the Installer for firmwareType.
func New(firmwareType firmware.Type, options Options) (Installer, error) {
	if options.SyslinuxLabel == "" {
		options.SyslinuxLabel = constants.DefaultSyslinuxLabel
	}
	return newInstaller(firmwareType, options)
}
