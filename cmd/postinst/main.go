package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/flags/commands"
	"github.com/Cloud-Foundations/postinst/lib/flags/loadflags"
	"github.com/Cloud-Foundations/postinst/lib/log/debuglogger"
	"github.com/Cloud-Foundations/postinst/postinst/bootloader"
	"github.com/Cloud-Foundations/postinst/postinst/install"
)

var (
	bootMountPoint = flag.String("bootMountPoint",
		constants.DefaultBootMountPoint,
		"Mount point for the boot partition")
	dryRun = flag.Bool("dryRun", false,
		"If true, do not make changes")
	firmwareType firmware.Type
	flushDelay   = flag.Duration("flushDelay",
		time.Second*constants.DefaultFlushDelaySeconds,
		"Time to wait for partition table updates to reach the disk")
	gptBackend = flag.String("gptBackend", backendDisk,
		"Partition table backend: disk or cgpt")
	layout           = install.LayoutRoot
	legacyBootloader = flag.String("legacyBootloader",
		bootloader.LegacySyslinux,
		"Bootloader for legacy firmware: syslinux or pygrub")
	logDebugLevel = flag.Int("logDebugLevel", -1, "Debug log level")
	procDirectory = flag.String("procDirectory", constants.ProcDirectory,
		"Directory where procfs is mounted")
	syslinuxLabel = flag.String("syslinuxLabel",
		constants.DefaultSyslinuxLabel,
		"Label prefix of syslinux boot entries")
	systemRoot = flag.String("systemRoot", "/",
		"Directory under which system paths are found")
)

func init() {
	flag.Var(&firmwareType, "firmwareType",
		"Firmware type: auto, secure, legacy, efi or uboot")
	flag.Var(&layout, "layout", "Partition layout: root or kernel-root")
}

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: postinst [flags...] command [args...]")
	fmt.Fprintln(w, "Common flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "Commands:")
	commands.PrintCommands(w, subcommands)
}

var subcommands = []commands.Command{
	{Command: "detect-firmware", Args: "", MinArgs: 0, MaxArgs: 0,
		CmdFunc: detectFirmwareSubcommand},
	{Command: "run", Args: "install-dir install-dev", MinArgs: 2, MaxArgs: 2,
		CmdFunc: runSubcommand},
	{Command: "show-plan", Args: "install-dev [install-dir]", MinArgs: 1,
		MaxArgs: 2, CmdFunc: showPlanSubcommand},
}

func doMain() int {
	if err := loadflags.LoadForDaemon("postinst"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		return 2
	}
	logger := debuglogger.New(stdlog.New(os.Stdout, "", 0))
	logger.SetLevel(int16(*logDebugLevel))
	return commands.RunCommands(subcommands, printUsage, logger)
}

func main() {
	os.Exit(doMain())
}
