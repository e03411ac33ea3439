package runner

import (
	"os"

	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/fsutil"
	"github.com/Cloud-Foundations/postinst/lib/fsutil/mounts"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/lib/wsyscall"
)

const mountProgram = "mount"

type mounter struct {
	dryRun     bool
	logger     log.DebugLogger
	mountTable string
	runner     osutil.CommandRunner
}

func (m *mounter) Mount(device, mountPoint string) error {
	if m.dryRun {
		m.logger.Debugf(0, "dry run: skipping: mount %s on %s\n",
			device, mountPoint)
		return nil
	}
	m.logger.Debugf(0, "mount %s on %s\n", device, mountPoint)
	if err := os.MkdirAll(mountPoint, fsutil.DirPerms); err != nil {
		return errors.NewIoError("making mount point", mountPoint, err)
	}
	// The programme probes the filesystem type, which differs by firmware.
	code, err := m.runner.Run(mountProgram, device, mountPoint)
	if err != nil {
		return errors.NewExternalToolError(mountProgram, -1, err)
	}
	if code != 0 {
		return errors.NewExternalToolError(
			mountProgram+" "+device+" "+mountPoint, code, nil)
	}
	return nil
}

func (m *mounter) Unmount(mountPoint string) error {
	if m.dryRun {
		m.logger.Debugf(0, "dry run: skipping: unmount %s\n", mountPoint)
		return nil
	}
	m.logger.Debugf(0, "unmount %s\n", mountPoint)
	if err := wsyscall.Unmount(mountPoint); err != nil {
		return errors.NewIoError("unmounting", mountPoint, err)
	}
	return nil
}

func (m *mounter) IsMounted(mountPoint string) (bool, error) {
	table, err := mounts.GetMountTableFromFile(m.mountTable)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.NewIoError("reading mount table", m.mountTable,
			err)
	}
	return table.IsMountPoint(mountPoint), nil
}
