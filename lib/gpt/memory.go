package gpt

import (
	"fmt"
	"sort"

	"github.com/Cloud-Foundations/postinst/lib/log"
)

func newMemoryStore(entries []Entry, logger log.DebugLogger) *MemoryStore {
	store := &MemoryStore{
		entries: make(map[uint]*Entry, len(entries)),
		logger:  logger,
	}
	for _, entry := range entries {
		entry := entry
		store.entries[entry.Number] = &entry
	}
	return store
}

func (s *MemoryStore) getEntries() []Entry {
	entries := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})
	return entries
}

func (s *MemoryStore) getEntry(partition uint) (*Entry, error) {
	if s.device == "" {
		return nil, fmt.Errorf("store not initialised")
	}
	if entry, ok := s.entries[partition]; ok {
		return entry, nil
	}
	return nil, fmt.Errorf("partition %d not found on %s", partition, s.device)
}

func (s *MemoryStore) initialize(baseDevice string) error {
	if baseDevice == "" {
		return fmt.Errorf("no device specified")
	}
	s.device = baseDevice
	s.logger.Debugf(1, "using in-memory partition table for %s\n", baseDevice)
	return nil
}

func (s *MemoryStore) partitionGUID(partition uint) (string, error) {
	entry, err := s.getEntry(partition)
	if err != nil {
		return "", err
	}
	return normaliseGUID(entry.GUID)
}

func (s *MemoryStore) setHighestPriority(partition uint) error {
	if _, err := s.getEntry(partition); err != nil {
		return err
	}
	changes, err := prioritise(s.getEntries(), partition)
	if err != nil {
		return err
	}
	for number, priority := range changes {
		entry := s.entries[number]
		entry.Attributes = entry.Attributes.WithPriority(priority)
		s.logger.Debugf(1, "%s: partition %d priority=%d\n",
			s.device, number, priority)
	}
	return nil
}

func (s *MemoryStore) setSuccessful(partition uint, successful bool) error {
	entry, err := s.getEntry(partition)
	if err != nil {
		return err
	}
	entry.Attributes = entry.Attributes.WithSuccessful(successful)
	return nil
}

func (s *MemoryStore) setTriesLeft(partition uint, tries uint) error {
	entry, err := s.getEntry(partition)
	if err != nil {
		return err
	}
	entry.Attributes = entry.Attributes.WithTries(tries)
	return nil
}
