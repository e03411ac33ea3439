package image

import (
	"fmt"
	"os"

	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/lib/wsyscall"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

const (
	// High byte of s_feature_ro_compat in the ext2 superblock.
	roCompatOffset = 0x467

	e2fsckProgram = "e2fsck"
)

type finalizer struct {
	options Options
	logger  log.DebugLogger
	runner  osutil.CommandRunner
}

func (f *finalizer) PatchFileSystem(device string) error {
	f.logger.Printf("patching root filesystem on %s\n", device)
	code, err := f.runner.Run(e2fsckProgram, "-fy", device)
	if err != nil {
		return errors.NewExternalToolError(e2fsckProgram, -1, err)
	}
	// Exit code 1 means errors were corrected.
	if code != 0 && code != 1 {
		return errors.NewExternalToolError(e2fsckProgram+" -fy "+device, code,
			nil)
	}
	return nil
}

func (f *finalizer) SetImage(plan *install.Plan) error {
	f.logger.Printf("setting image on %s\n", plan.Root.Device)
	if f.options.RootfsVerification {
		f.logger.Debugln(0, "rootfs verification enabled, leaving read-only")
		return nil
	}
	if f.options.DryRun {
		f.logger.Debugf(0, "dry run: skipping: making %s writable\n",
			plan.Root.Device)
		return nil
	}
	if err := makeFileSystemWritable(plan.Root.Device); err != nil {
		return errors.NewIoError("making filesystem writable",
			plan.Root.Device, err)
	}
	return nil
}

func (f *finalizer) MakeDeviceReadOnly(device string) error {
	f.logger.Printf("making %s read-only\n", device)
	if f.options.DryRun {
		f.logger.Debugf(0, "dry run: skipping: BLKROSET %s\n", device)
		return nil
	}
	if err := wsyscall.SetBlockDeviceReadOnly(device, true); err != nil {
		return errors.NewIoError("setting read-only", device, err)
	}
	return nil
}

func makeFileSystemWritable(device string) error {
	file, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.WriteAt([]byte{0}, roCompatOffset); err != nil {
		return err
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("error syncing: %s", err)
	}
	return file.Close()
}
