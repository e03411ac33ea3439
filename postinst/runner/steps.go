package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/errors"
	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/format"
	"github.com/Cloud-Foundations/postinst/lib/fsutil"
	"github.com/Cloud-Foundations/postinst/lib/lsbrelease"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/lib/verstr"
	"github.com/Cloud-Foundations/postinst/postinst/activate"
	"github.com/Cloud-Foundations/postinst/postinst/bootloader"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

const (
	firmwareUpdateInactiveSlot = 3
	packFileSuffix             = ".pack"
	syncTimeout                = time.Minute
)

func (r *Runner) runSteps() error {
	if err := r.configure(); err != nil {
		return err
	}
	version, err := r.readSourceVersion()
	if err != nil {
		return err
	}
	plan := r.plan
	makeReadOnly := false
	if r.params.Context.IsUpdate() &&
		verstr.Less(version, constants.FileSystemPatchVersion) {
		r.logger.Printf("updating from %s, patching new root filesystem\n",
			version)
		if err := r.finalizer.PatchFileSystem(plan.Root.Device); err != nil {
			return fmt.Errorf("error patching root filesystem: %w", err)
		}
		makeReadOnly = true
	}
	r.logger.Printf("setting boot target to %s: partition %d, slot %s\n",
		plan.Root.Device, plan.Root.Number, plan.Slot)
	if err := r.finalizer.SetImage(plan); err != nil {
		return fmt.Errorf("error setting image: %w", err)
	}
	r.report(r.markNoDelta())
	r.report(r.clearNetworkDriverCache())
	r.logger.Println("syncing filesystems before changing boot order")
	r.report(r.sync())
	if makeReadOnly {
		r.report(Outcome{"making root device read-only",
			r.finalizer.MakeDeviceReadOnly(plan.Root.Device)})
	}
	commitStartTime := time.Now()
	err = activate.Commit(plan, r.params.Context, r.store, r.logger)
	if err != nil {
		return err
	}
	recordPartitionCommit(commitStartTime)
	// The new slot is now bootable. Only a factory install may still fail
	// outright.
	if outcome := r.report(r.updateFirmware()); !outcome.Ok() {
		r.fail(outcome.Err)
	}
	r.report(r.removePackFiles())
	if outcome := r.report(r.markInstallCompleted()); !outcome.Ok() {
		if r.params.Context.FactoryInstall {
			return outcome.Err
		}
	}
	r.logger.Println("syncing filesystems at end of post-install")
	r.report(r.sync())
	r.waitForFlush()
	return r.installBootloader()
}

func (r *Runner) configure() error {
	serial := firmware.ReadSystemSerialFromDirectory(
		r.path(constants.DmiDirectory))
	if serial != "" {
		r.logger.Printf("system serial number: %s\n", serial)
	}
	plan, err := install.Configure(install.Params{
		InstallDevice:    r.params.InstallDevice,
		InstallDirectory: r.params.InstallDirectory,
		Layout:           r.params.Layout,
		FirmwareType:     r.params.FirmwareType,
		ProcDirectory:    r.path(r.params.ProcDirectory),
		LookupGUID:       r.params.LookupGUID,
	})
	if err != nil {
		return fmt.Errorf("error configuring install: %w", err)
	}
	installer, err := bootloader.New(plan.FirmwareType,
		r.params.InstallerOptions)
	if err != nil {
		return fmt.Errorf("error configuring install: %w", err)
	}
	r.plan = plan
	r.installer = installer
	r.logger.Printf("post-install configured: %s, %s context, %s bootloader\n",
		plan, r.params.Context, installer)
	return nil
}

func (r *Runner) readSourceVersion() (string, error) {
	filename := r.path(constants.LsbReleaseFile)
	r.logRelease("FROM (rootfs)", filename)
	r.logRelease("FROM (stateful)", r.path(constants.StatefulLsbReleaseFile))
	r.logRelease("TO", filepath.Join(r.plan.Root.MountPoint,
		constants.LsbReleaseFile))
	version, err := lsbrelease.ReadValue(filename, constants.ReleaseVersionKey)
	if err != nil {
		return "", errors.NewIoError("reading release version", filename, err)
	}
	if version == "" {
		return "", errors.NewConfigurationError(errors.ReasonMissingInput,
			fmt.Sprintf("no %s in %s", constants.ReleaseVersionKey, filename))
	}
	return version, nil
}

func (r *Runner) logRelease(title, filename string) {
	release, err := lsbrelease.Load(filename)
	if err != nil {
		r.logger.Debugf(1, "cannot read %s: %s\n", filename, err)
		return
	}
	lines := make([]string, 0, len(release.Keys()))
	for _, key := range release.Keys() {
		lines = append(lines, key+"="+release.Get(key))
	}
	r.logger.Printf("%s:\n%s\n", title, strings.Join(lines, "\n"))
}

// markNoDelta records that the new root filesystem may have been written to,
// so it cannot be the source of a delta update.
func (r *Runner) markNoDelta() Outcome {
	filename := filepath.Join(r.plan.Root.MountPoint, constants.NoDeltaFile)
	return Outcome{"marking no delta", r.touch(filename)}
}

func (r *Runner) clearNetworkDriverCache() Outcome {
	filename := r.path(constants.PreloadNetworkDrivers)
	r.logger.Printf("clearing network driver boot cache: %s\n", filename)
	return Outcome{"clearing network driver cache", r.remove(filename)}
}

func (r *Runner) sync() Outcome {
	return Outcome{"syncing filesystems", osutil.SyncTimeout(syncTimeout)}
}

func (r *Runner) updateFirmware() Outcome {
	const name = "firmware update"
	program := filepath.Join(r.plan.Root.MountPoint,
		constants.FirmwareUpdaterProgram)
	if fi, err := os.Stat(program); err != nil ||
		!fi.Mode().IsRegular() || fi.Mode().Perm()&0111 == 0 {
		r.logger.Println("no firmware updates available")
		return Outcome{Name: name}
	}
	mode := "recovery"
	if r.params.Context.IsUpdate() {
		mode = "autoupdate"
	}
	r.logger.Printf("starting firmware updater (%s --mode=%s)\n",
		program, mode)
	code, err := r.runner.Run(program, "--mode="+mode)
	if err != nil {
		return Outcome{name, errors.NewExternalToolError(program, -1, err)}
	}
	switch code {
	case 0:
		r.logger.Println("firmware update completed")
		return Outcome{Name: name}
	case firmwareUpdateInactiveSlot:
		r.logger.Printf("firmware cannot be updated: booted from inactive slot (exit code: %d)\n",
			code)
	}
	return Outcome{name, errors.NewExternalToolError(
		program+" --mode="+mode, code, nil)}
}

// removePackFiles removes the ureadahead pack files, which are out of date
// for the new image and will be regenerated on the next boot.
func (r *Runner) removePackFiles() Outcome {
	dirname := r.path(constants.UreadaheadDirectory)
	names, err := filepath.Glob(filepath.Join(dirname, "*"+packFileSuffix))
	if err != nil {
		return Outcome{"removing pack files", err}
	}
	var firstError error
	for _, name := range names {
		if err := r.remove(name); err != nil && firstError == nil {
			firstError = err
		}
	}
	return Outcome{"removing pack files", firstError}
}

func (r *Runner) markInstallCompleted() Outcome {
	return Outcome{"marking install completed",
		r.touch(r.path(constants.InstallCompletedFile))}
}

func (r *Runner) waitForFlush() {
	delay := r.params.FlushDelay
	if delay <= 0 {
		return
	}
	// Sync does not flush partition table updates made by cgpt.
	r.logger.Printf("waiting %s for partition table updates to flush\n",
		format.Duration(delay))
	time.Sleep(delay)
}

func (r *Runner) installBootloader() error {
	plan := r.plan
	if !r.installer.NeedsBootPartition() {
		r.logger.Printf("%s firmware does not need the boot partition\n",
			plan.FirmwareType)
		return nil
	}
	mountPoint := r.path(r.params.BootMountPoint)
	mounted, err := r.mounter.IsMounted(mountPoint)
	if err != nil {
		return err
	}
	if mounted {
		r.logger.Printf("unmounting stale mount on %s\n", mountPoint)
		if err := r.mounter.Unmount(mountPoint); err != nil {
			return err
		}
	}
	if err := r.mounter.Mount(plan.Boot.Device, mountPoint); err != nil {
		return fmt.Errorf("error mounting boot partition: %w", err)
	}
	plan.Boot.MountPoint = mountPoint
	if r.params.DryRun {
		r.logger.Debugf(0, "dry run: skipping: %s bootloader install\n",
			r.installer)
	} else if err := r.installer.Install(plan, r.logger); err != nil {
		r.logger.Printf("%s bootloader install failed: %s\n", r.installer,
			err)
		r.fail(fmt.Errorf("error installing %s bootloader: %w", r.installer,
			err))
	}
	if err := r.mounter.Unmount(mountPoint); err != nil {
		r.logger.Printf("error unmounting boot partition: %s\n", err)
		r.fail(err)
	}
	return nil
}

func (r *Runner) remove(filename string) error {
	if r.params.DryRun {
		r.logger.Debugf(0, "dry run: skipping: remove %s\n", filename)
		return nil
	}
	if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
		return errors.NewIoError("removing", filename, err)
	}
	return nil
}

func (r *Runner) touch(filename string) error {
	if r.params.DryRun {
		r.logger.Debugf(0, "dry run: skipping: touch %s\n", filename)
		return nil
	}
	if err := fsutil.Touch(filename); err != nil {
		return errors.NewIoError("touching", filename, err)
	}
	return nil
}
