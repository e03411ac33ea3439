// Package image prepares a freshly written root filesystem for its first
// boot.
package image

import (
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

type Finalizer interface {
	// PatchFileSystem repairs a root filesystem written by an old updater.
	PatchFileSystem(device string) error
	// SetImage hands the new root filesystem over for booting.
	SetImage(plan *install.Plan) error
	// MakeDeviceReadOnly marks a block device read-only in the kernel.
	MakeDeviceReadOnly(device string) error
}

type Options struct {
	DryRun bool
	// RootfsVerification leaves the filesystem read-only, for verified
	// boot. Normally false.
	RootfsVerification bool
}

// New returns the standard Finalizer. External programmes are run with
// runner.
func New(runner osutil.CommandRunner, options Options,
	logger log.DebugLogger) Finalizer {
	return &finalizer{options: options, logger: logger, runner: runner}
}

// MakeFileSystemWritable clears the read-only compatible feature flags of
// the ext2 filesystem on device, so that it may be mounted read-write.
func MakeFileSystemWritable(device string) error {
	return makeFileSystemWritable(device)
}
