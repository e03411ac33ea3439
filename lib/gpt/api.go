/*
Package gpt updates the ChromeOS boot attributes of GUID Partition Table
entries.

The attributes live in the upper bits of the 64-bit attribute field of each
partition entry: a 4-bit priority (bits 48-51), a 4-bit count of tries left
(bits 52-55) and a successful flag (bit 56). Firmware boots the bootable
partition with the highest priority, decrementing tries on each attempt
until the partition is marked successful.

Three AttributeStore implementations are provided: one which edits the
table directly with github.com/diskfs/go-diskfs, one which drives the cgpt
programme and one which keeps the table in memory.
*/
package gpt

import (
	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/osutil"
)

const (
	MaxPriority = 15
	MaxTries    = 15

	ChromeOSKernelType = "FE3A2A5D-4F32-41A7-B725-ACCC3285A309"
	ChromeOSRootType   = "3CB8E202-3B7E-47DD-8A3C-7FF2A13CFCEC"
)

// Attributes is the 64-bit attribute field of a partition table entry.
type Attributes uint64

// AttributeStore reads and updates the boot attributes of the partitions on
// one disk. Initialize must be called first. Partitions are numbered from 1.
type AttributeStore interface {
	Initialize(baseDevice string) error
	SetHighestPriority(partition uint) error
	SetTriesLeft(partition uint, tries uint) error
	SetSuccessful(partition uint, successful bool) error
	PartitionGUID(partition uint) (string, error)
	Close() error
}

// Entry describes one partition for the in-memory store.
type Entry struct {
	Number     uint
	TypeGUID   string
	GUID       string
	Attributes Attributes
}

// MemoryStore is an AttributeStore which holds the table in memory.
type MemoryStore struct {
	device  string
	entries map[uint]*Entry
	logger  log.DebugLogger
}

// NewCgptStore returns an AttributeStore which runs the cgpt programme.
func NewCgptStore(runner osutil.CommandRunner,
	logger log.DebugLogger) AttributeStore {
	return &cgptStore{logger: logger, runner: runner}
}

// NewDiskStore returns an AttributeStore which edits the partition table
// directly. Each update is written to the disk immediately.
func NewDiskStore(logger log.DebugLogger) AttributeStore {
	return &diskStore{logger: logger}
}

// NewMemoryStore returns a MemoryStore containing copies of entries.
func NewMemoryStore(entries []Entry, logger log.DebugLogger) *MemoryStore {
	return newMemoryStore(entries, logger)
}

// NormaliseGUID parses a GUID and returns it in canonical lower-case form.
func NormaliseGUID(guid string) (string, error) {
	return normaliseGUID(guid)
}

// Prioritise computes the new priorities needed to make target the highest
// priority partition among the partitions of the same type. The returned map
// contains only the partitions whose priority must change.
func Prioritise(entries []Entry, target uint) (map[uint]uint, error) {
	return prioritise(entries, target)
}

func (a Attributes) Priority() uint {
	return a.priority()
}

func (a Attributes) Successful() bool {
	return a.successful()
}

func (a Attributes) Tries() uint {
	return a.tries()
}

// WithPriority returns a copy of a with the priority set. Values above
// MaxPriority are clamped.
func (a Attributes) WithPriority(priority uint) Attributes {
	return a.withPriority(priority)
}

func (a Attributes) WithSuccessful(successful bool) Attributes {
	return a.withSuccessful(successful)
}

// WithTries returns a copy of a with the tries left set. Values above
// MaxTries are clamped.
func (a Attributes) WithTries(tries uint) Attributes {
	return a.withTries(tries)
}

// Device returns the device most recently passed to Initialize.
func (s *MemoryStore) Device() string {
	return s.device
}

// Entries returns a copy of the table, ordered by partition number.
func (s *MemoryStore) Entries() []Entry {
	return s.getEntries()
}

func (s *MemoryStore) Initialize(baseDevice string) error {
	return s.initialize(baseDevice)
}

func (s *MemoryStore) SetHighestPriority(partition uint) error {
	return s.setHighestPriority(partition)
}

func (s *MemoryStore) SetTriesLeft(partition uint, tries uint) error {
	return s.setTriesLeft(partition, tries)
}

func (s *MemoryStore) SetSuccessful(partition uint, successful bool) error {
	return s.setSuccessful(partition, successful)
}

func (s *MemoryStore) PartitionGUID(partition uint) (string, error) {
	return s.partitionGUID(partition)
}

func (s *MemoryStore) Close() error {
	return nil
}
