package main

import (
	"fmt"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/gpt"
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
	"github.com/Cloud-Foundations/postinst/postinst/install"
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
)

const (
	backendCgpt = "cgpt"
	backendDisk = "disk"
)

func makeStore(runner osutil.CommandRunner,
	logger log.DebugLogger) (gpt.AttributeStore, error) {
	if *dryRun {
		return gpt.NewMemoryStore(layout.DryRunEntries(), logger), nil
	}
	switch *gptBackend {
	case backendCgpt:
		return gpt.NewCgptStore(runner, logger), nil
	case backendDisk:
		return gpt.NewDiskStore(logger), nil
	}
	return nil, fmt.Errorf("unknown partition table backend: %s", *gptBackend)
}

// makeGUIDLookup returns a lookup which opens its own store, so that the
// store used for the partition table update starts afresh.
func makeGUIDLookup(runner osutil.CommandRunner,
	logger log.DebugLogger) install.GUIDLookup {
	return func(baseDevice string, number uint) (string, error) {
		store, err := makeStore(runner, logger)
		if err != nil {
			return "", err
		}
		if err := store.Initialize(baseDevice); err != nil {
			return "", err
		}
		defer store.Close()
		return store.PartitionGUID(number)
	}
}

func makeInstallParams(installDevice, installDirectory string,
	logger log.DebugLogger) install.Params {
	runner := osutil.NewCommandRunner(logger, *dryRun)
	return install.Params{
		InstallDevice:    installDevice,
		InstallDirectory: installDirectory,
		Layout:           layout,
		FirmwareType:     firmwareType,
		ProcDirectory:    filepath.Join(*systemRoot, *procDirectory),
		LookupGUID:       makeGUIDLookup(runner, logger),
	}
}

func logMetrics(logger log.DebugLogger) {
	for _, metric := range tricorder.ReadMyMetrics(
		constants.MetricsDirectory) {
		logger.Debugf(1, "%s: %v\n", metric.Path, metric.Value)
	}
}
