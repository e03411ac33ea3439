package main

import (
	"fmt"
	"os"

	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/postinst/bootloader"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

func showPlanSubcommand(args []string, logger log.DebugLogger) error {
	var installDirectory string
	if len(args) > 1 {
		installDirectory = args[1]
	}
	if err := showPlan(args[0], installDirectory, logger); err != nil {
		return fmt.Errorf("error showing plan: %s", err)
	}
	return nil
}

func showPlan(installDevice, installDirectory string,
	logger log.DebugLogger) error {
	plan, err := install.Configure(makeInstallParams(installDevice,
		installDirectory, logger))
	if err != nil {
		return err
	}
	installer, err := bootloader.New(plan.FirmwareType, bootloader.Options{
		LegacyBootloader: *legacyBootloader,
		SyslinuxLabel:    *syslinuxLabel,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, plan)
	if plan.Root.UUID != "" {
		fmt.Fprintf(os.Stdout, "root GUID=%s\n", plan.Root.UUID)
	}
	fmt.Fprintf(os.Stdout, "context=%s bootloader=%s boot partition needed=%v\n",
		install.ContextFromEnvironment(), installer,
		installer.NeedsBootPartition())
	return nil
}
