package gpt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Cloud-Foundations/postinst/lib/log"
	"github.com/Cloud-Foundations/postinst/lib/mbr"
	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/partition/gpt"
)

type diskStore struct {
	device string
	disk   *disk.Disk
	logger log.DebugLogger
	table  *gpt.Table
}

func (s *diskStore) Initialize(baseDevice string) error {
	if s.disk != nil {
		return fmt.Errorf("already initialised for %s", s.device)
	}
	// Not exclusive: the disk has mounted partitions.
	d, err := diskfs.Open(baseDevice, diskfs.WithOpenMode(diskfs.ReadWrite))
	if err != nil {
		return err
	}
	if bootRecord, err := mbr.Decode(d.File); err != nil {
		d.Close()
		return fmt.Errorf("error reading MBR: %s", err)
	} else if bootRecord == nil || !bootRecord.IsProtective() {
		d.Close()
		return fmt.Errorf("%s: no protective MBR", baseDevice)
	}
	rawTable, err := d.GetPartitionTable()
	if err != nil {
		d.Close()
		return err
	}
	table, ok := rawTable.(*gpt.Table)
	if !ok {
		d.Close()
		return fmt.Errorf("%s: partition table is not GPT", baseDevice)
	}
	slots, err := readEntrySlots(d.File, d.LogicalBlocksize)
	if err != nil {
		d.Close()
		return fmt.Errorf("error reading partition entries: %s: %s",
			baseDevice, err)
	}
	table.Partitions, err = restoreEmptySlots(table.Partitions, slots)
	if err != nil {
		d.Close()
		return fmt.Errorf("%s: %s", baseDevice, err)
	}
	s.device = baseDevice
	s.disk = d
	s.table = table
	s.logger.Debugf(1, "read GPT from %s: %d entries\n",
		baseDevice, len(table.Partitions))
	return nil
}

func (s *diskStore) SetHighestPriority(partition uint) error {
	if _, err := s.getPartition(partition); err != nil {
		return err
	}
	changes, err := prioritise(s.entries(), partition)
	if err != nil {
		return err
	}
	for number, priority := range changes {
		p := s.table.Partitions[number-1]
		p.Attributes = uint64(Attributes(p.Attributes).WithPriority(priority))
		s.logger.Debugf(1, "%s: partition %d priority=%d\n",
			s.device, number, priority)
	}
	return s.write()
}

func (s *diskStore) SetTriesLeft(partition uint, tries uint) error {
	p, err := s.getPartition(partition)
	if err != nil {
		return err
	}
	p.Attributes = uint64(Attributes(p.Attributes).WithTries(tries))
	return s.write()
}

func (s *diskStore) SetSuccessful(partition uint, successful bool) error {
	p, err := s.getPartition(partition)
	if err != nil {
		return err
	}
	p.Attributes = uint64(Attributes(p.Attributes).WithSuccessful(successful))
	return s.write()
}

func (s *diskStore) PartitionGUID(partition uint) (string, error) {
	p, err := s.getPartition(partition)
	if err != nil {
		return "", err
	}
	return normaliseGUID(p.GUID)
}

func (s *diskStore) Close() error {
	if s.disk == nil {
		return nil
	}
	err := s.disk.Close()
	s.disk = nil
	s.table = nil
	return err
}

// entries returns the used partitions. Entries are numbered by their position
// in the partition array.
func (s *diskStore) entries() []Entry {
	entries := make([]Entry, 0, len(s.table.Partitions))
	for index, p := range s.table.Partitions {
		if p == nil || p.Type == gpt.Unused {
			continue
		}
		entries = append(entries, Entry{
			Number:     uint(index + 1),
			TypeGUID:   string(p.Type),
			GUID:       p.GUID,
			Attributes: Attributes(p.Attributes),
		})
	}
	return entries
}

func (s *diskStore) getPartition(partition uint) (*gpt.Partition, error) {
	if s.table == nil {
		return nil, fmt.Errorf("store not initialised")
	}
	if partition < 1 || int(partition) > len(s.table.Partitions) {
		return nil, fmt.Errorf("partition %d not found on %s",
			partition, s.device)
	}
	p := s.table.Partitions[partition-1]
	if p == nil || p.Type == gpt.Unused {
		return nil, fmt.Errorf("partition %d on %s is unused",
			partition, s.device)
	}
	return p, nil
}

// write writes the primary and backup tables. The kernel is not asked to
// re-read the table, since partitions on the disk are in use.
func (s *diskStore) write() error {
	return s.table.Write(s.disk.File, s.disk.Size)
}

// readEntrySlots reports which slots of the primary partition entry array are
// in use. An entry is unused when its type GUID is all zeroes.
func readEntrySlots(reader io.ReaderAt, sectorSize int64) ([]bool, error) {
	header := make([]byte, 92)
	if _, err := reader.ReadAt(header, sectorSize); err != nil {
		return nil, err
	}
	if string(header[:8]) != "EFI PART" {
		return nil, fmt.Errorf("bad GPT header signature")
	}
	arrayLBA := binary.LittleEndian.Uint64(header[72:80])
	numEntries := binary.LittleEndian.Uint32(header[80:84])
	entrySize := binary.LittleEndian.Uint32(header[84:88])
	if entrySize < 128 || numEntries > 4096 {
		return nil, fmt.Errorf("bad partition entry array: %d entries of %d bytes",
			numEntries, entrySize)
	}
	array := make([]byte, int(numEntries)*int(entrySize))
	if _, err := reader.ReadAt(array, int64(arrayLBA)*sectorSize); err != nil {
		return nil, err
	}
	zeroGUID := make([]byte, 16)
	slots := make([]bool, numEntries)
	for index := range slots {
		offset := index * int(entrySize)
		slots[index] = !bytes.Equal(array[offset:offset+16], zeroGUID)
	}
	return slots, nil
}

// restoreEmptySlots places the used partitions back at their positions in the
// entry array, filling empty slots with Unused entries. go-diskfs writes
// Partitions[i] to slot i, so this also keeps the numbering when writing.
func restoreEmptySlots(partitions []*gpt.Partition,
	slots []bool) ([]*gpt.Partition, error) {
	last := -1
	for index, used := range slots {
		if used {
			last = index
		}
	}
	restored := make([]*gpt.Partition, 0, last+1)
	next := 0
	for index := 0; index <= last; index++ {
		if !slots[index] {
			restored = append(restored, &gpt.Partition{Type: gpt.Unused})
			continue
		}
		if next >= len(partitions) {
			break
		}
		restored = append(restored, partitions[next])
		next++
	}
	if next != len(partitions) || len(restored) != last+1 {
		return nil, fmt.Errorf("%d used entry slots but %d partitions read",
			countUsed(slots), len(partitions))
	}
	return restored, nil
}

func countUsed(slots []bool) int {
	var count int
	for _, used := range slots {
		if used {
			count++
		}
	}
	return count
}
