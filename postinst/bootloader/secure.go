package bootloader

import (
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

type secureInstaller struct{}

func (secureInstaller) Install(plan *install.Plan,
	logger log.DebugLogger) error {
	logger.Debugln(0, "secure firmware: no bootloader files to update")
	return nil
}

func (secureInstaller) NeedsBootPartition() bool {
	return false
}

func (secureInstaller) String() string {
	return "secure"
}
