/*
Package install builds the plan for a post-install run.

Given the device holding the freshly written root filesystem, the plan
names the slot being installed and the kernel, boot and root partitions
that go with it. Building a plan never changes anything on disk.
*/
package install

import (
	"github.com/Cloud-Foundations/postinst/lib/firmware"
	"github.com/Cloud-Foundations/postinst/lib/gpt"
)

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
)

type Slot string

// Partition identifies one partition of a disk. Device is derived from
// BaseDevice and Number. MountPoint is where the partition is mounted, if
// anywhere.
type Partition struct {
	BaseDevice string
	Number     uint
	Device     string
	MountPoint string
	UUID       string
}

// Layout is a partition numbering scheme. A zero KernelOffset means the
// layout has no separate kernel partitions; otherwise the kernel partition
// number is the root partition number minus KernelOffset.
type Layout struct {
	Name         string
	SlotARoot    uint
	SlotBRoot    uint
	KernelOffset uint
	BootNumber   uint
}

var (
	// LayoutRoot has root filesystems in partitions 3 and 4 and boots
	// from partition 1.
	LayoutRoot = Layout{
		Name:       "root",
		SlotARoot:  3,
		SlotBRoot:  4,
		BootNumber: 1,
	}
	// LayoutKernelRoot pairs each root filesystem (3 and 5) with the kernel
	// partition before it and boots from partition 12.
	LayoutKernelRoot = Layout{
		Name:         "kernel-root",
		SlotARoot:    3,
		SlotBRoot:    5,
		KernelOffset: 1,
		BootNumber:   12,
	}
)

// Context holds the environment signals which distinguish an ordinary
// background update from the other kinds of install.
type Context struct {
	FactoryInstall  bool
	RecoveryInstall bool
	Install         bool
}

type Plan struct {
	Slot         Slot
	Root         Partition
	Kernel       Partition // Zero if the layout has no kernel partitions.
	Boot         Partition
	FirmwareType firmware.Type
	Layout       string
}

// GUIDLookup returns the unique GUID of a partition on a disk.
type GUIDLookup func(baseDevice string, number uint) (string, error)

type Params struct {
	InstallDevice    string
	InstallDirectory string
	Layout           Layout
	FirmwareType     firmware.Type // TypeUnknown means detect.
	ProcDirectory    string
	LookupGUID       GUIDLookup // Optional. Used only for EFI firmware.
}

// Configure builds the plan for installing to params.InstallDevice. If the
// firmware type is not specified it is detected. Errors are
// ConfigurationErrors, except for a failed GUID lookup which is an IoError.
func Configure(params Params) (*Plan, error) {
	return configure(params)
}

// ContextFromEnvironment reads the IS_FACTORY_INSTALL, IS_RECOVERY_INSTALL
// and IS_INSTALL environment variables. A variable which is present counts
// as set, whatever its value.
func ContextFromEnvironment() Context {
	return contextFromLookup(osLookupEnv)
}

// ContextFromLookup is similar to ContextFromEnvironment, except variables
// are looked up with lookup.
func ContextFromLookup(lookup func(string) (string, bool)) Context {
	return contextFromLookup(lookup)
}

// MakePartitionDevice returns the device path for partition number of
// baseDevice. A "p" separates the number when the base device name ends in a
// digit (/dev/mmcblk0p3) and otherwise the number is appended (/dev/sda3).
func MakePartitionDevice(baseDevice string, number uint) string {
	return makePartitionDevice(baseDevice, number)
}

// NewPartition returns the Partition for number on baseDevice.
func NewPartition(baseDevice string, number uint) Partition {
	return Partition{
		BaseDevice: baseDevice,
		Number:     number,
		Device:     makePartitionDevice(baseDevice, number),
	}
}

// DryRunEntries returns a partition table with the root (and kernel)
// partitions of the layout, to stand in for the target disk during a dry run.
// The GUIDs are stable across runs.
func (l Layout) DryRunEntries() []gpt.Entry {
	return l.dryRunEntries()
}

// ParseLayout returns the layout with the specified name.
func ParseLayout(name string) (Layout, error) {
	return parseLayout(name)
}

// ParsePartitionDevice reverses MakePartitionDevice. A device without a
// trailing partition number is an InvalidTargetError.
func ParsePartitionDevice(device string) (Partition, error) {
	return parsePartitionDevice(device)
}

// IsUpdate returns true for an ordinary background update, which has an
// older slot to fall back to.
func (c Context) IsUpdate() bool {
	return !(c.FactoryInstall || c.RecoveryInstall || c.Install)
}

func (c Context) String() string {
	return c.string()
}

// Set implements the flag.Value interface.
func (l *Layout) Set(value string) error {
	layout, err := parseLayout(value)
	if err != nil {
		return err
	}
	*l = layout
	return nil
}

func (l *Layout) String() string {
	return l.Name
}

// SlotForNumber returns the slot whose root filesystem is in partition
// number.
func (l Layout) SlotForNumber(number uint) (Slot, bool) {
	return l.slotForNumber(number)
}

func (p Partition) IsZero() bool {
	return p.Number == 0
}

func (p *Plan) String() string {
	return p.string()
}
