package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/log"
)

func detectFirmwareSubcommand(args []string, logger log.DebugLogger) error {
	if err := detectFirmware(logger); err != nil {
		return fmt.Errorf("error detecting firmware: %s", err)
	}
	return nil
}

func detectFirmware(logger log.DebugLogger) error {
	firmwareType, err := firmware.Detect(
		filepath.Join(*systemRoot, *procDirectory))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, firmwareType)
	return err
}
