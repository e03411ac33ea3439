package main

import (
	"errors"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/postinst/bootloader"
	"github.com/Cloud-Foundations/postinst/postinst/image"
	"github.com/Cloud-Foundations/postinst/postinst/install"
	"github.com/Cloud-Foundations/postinst/postinst/runner"
)

func runSubcommand(args []string, logger log.DebugLogger) error {
	defer logMetrics(logger)
	return runPostInstall(args[0], args[1], logger)
}

func runPostInstall(installDirectory, installDevice string,
	logger log.DebugLogger) error {
	commandRunner := osutil.NewCommandRunner(logger, *dryRun)
	store, err := makeStore(commandRunner, logger)
	if err != nil {
		return err
	}
	params := runner.Params{
		InstallDirectory: installDirectory,
		InstallDevice:    installDevice,
		Layout:           layout,
		FirmwareType:     firmwareType,
		BootMountPoint:   *bootMountPoint,
		FlushDelay:       *flushDelay,
		SystemRoot:       *systemRoot,
		ProcDirectory:    *procDirectory,
		Context:          install.ContextFromEnvironment(),
		DryRun:           *dryRun,
		CommandRunner:    commandRunner,
		Finalizer: image.New(commandRunner,
			image.Options{DryRun: *dryRun}, logger),
		InstallerOptions: bootloader.Options{
			LegacyBootloader: *legacyBootloader,
			SyslinuxLabel:    *syslinuxLabel,
		},
		LookupGUID: makeGUIDLookup(commandRunner, logger),
		Mounter: runner.NewMounter(commandRunner,
			filepath.Join(*systemRoot, constants.ProcMounts), *dryRun, logger),
		Store:  store,
		Logger: logger,
	}
	if runner.RunPostInstall(params) != 0 {
		return errors.New("post-install failed")
	}
	return nil
}
