/*
Package runner performs a complete post-install run.

A run configures the install plan, prepares the new root filesystem,
commits the partition table so that firmware boots the new slot and then,
for firmware which needs it, mounts the boot partition and installs the
bootloader configuration. Once the partition table is committed nothing is
reverted: later failures mark the run as failed but the new slot stays
bootable.
*/
package runner

import (
	"time"

	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/gpt"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/postinst/bootloader"
	"github.com/Cloud-Foundations/postinst/postinst/image"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

// Mounter mounts and unmounts the boot partition.
type Mounter interface {
	Mount(device, mountPoint string) error
	Unmount(mountPoint string) error
	IsMounted(mountPoint string) (bool, error)
}

// Outcome is the result of a best-effort step. A failed Outcome is logged
// and never becomes the error of the run by itself.
type Outcome struct {
	Name string
	Err  error
}

type Params struct {
	InstallDirectory string // Where the new root filesystem is mounted.
	InstallDevice    string // The device holding the new root filesystem.
	Layout           install.Layout
	FirmwareType     firmware.Type // TypeUnknown means detect.
	BootMountPoint   string
	FlushDelay       time.Duration
	// SystemRoot is prepended to absolute paths on the running system.
	// The default is "/".
	SystemRoot    string
	ProcDirectory string
	Context       install.Context
	DryRun        bool

	// Collaborators. Those which are nil get the standard implementation.
	CommandRunner    osutil.CommandRunner
	Finalizer        image.Finalizer
	InstallerOptions bootloader.Options
	LookupGUID       install.GUIDLookup
	Mounter          Mounter
	Store            gpt.AttributeStore

	Logger log.DebugLogger
}

type Runner struct {
	params    Params
	finalizer image.Finalizer
	logger    log.DebugLogger
	mounter   Mounter
	runner    osutil.CommandRunner
	store     gpt.AttributeStore
	plan      *install.Plan
	installer bootloader.Installer
	failures  []error
}

// New creates a Runner. The Logger must be specified.
func New(params Params) *Runner {
	return newRunner(params)
}

// NewMounter returns a Mounter which runs the mount programme and checks for
// existing mounts in the mount table file (normally /proc/mounts).
func NewMounter(runner osutil.CommandRunner, mountTable string, dryRun bool,
	logger log.DebugLogger) Mounter {
	return &mounter{
		dryRun:     dryRun,
		logger:     logger,
		mountTable: mountTable,
		runner:     runner,
	}
}

// RunPostInstall performs a run and returns the process exit code: 0 on
// success or 1 on failure.
func RunPostInstall(params Params) int {
	return runPostInstall(params)
}

// Plan returns the install plan, once Run has configured it.
func (r *Runner) Plan() *install.Plan {
	return r.plan
}

// Run performs the run. The error combines the fatal error, if any, with
// the failures of steps which did not stop the run.
func (r *Runner) Run() error {
	return r.run()
}

func (o Outcome) Ok() bool {
	return o.Err == nil
}
