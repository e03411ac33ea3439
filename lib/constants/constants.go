package constants

const (
	DefaultBootMountPoint    = "/tmp/boot_mnt"
	DefaultFlushDelaySeconds = 10
	DefaultSyslinuxLabel     = "coreos"

	// Version before which an update must patch the root filesystem.
	FileSystemPatchVersion = "0.10.156.2"

	// Paths on the running system. These are resolved under the system root.
	DmiDirectory           = "/sys/class/dmi/id"
	InstallCompletedFile   = StatefulPartition + "/.install_completed"
	LsbReleaseFile         = "/etc/lsb-release"
	PreloadNetworkDrivers  = "/var/lib/preload-network-drivers"
	ProcDirectory          = "/proc"
	ProcMounts             = ProcDirectory + "/mounts"
	StatefulLsbReleaseFile = StatefulPartition + "/etc/lsb-release"
	StatefulPartition      = "/mnt/stateful_partition"
	UreadaheadDirectory    = "/var/lib/ureadahead"

	// Paths relative to the new root filesystem.
	FirmwareUpdaterProgram = "usr/sbin/chromeos-firmwareupdate"
	NoDeltaFile            = ".nodelta"

	ReleaseVersionKey = "COREOS_RELEASE_VERSION"

	FactoryInstallVariable  = "IS_FACTORY_INSTALL"
	InstallVariable         = "IS_INSTALL"
	RecoveryInstallVariable = "IS_RECOVERY_INSTALL"

	MetricsDirectory = "/postinst"
)
