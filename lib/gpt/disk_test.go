package gpt

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cloud-Foundations/postinst/lib/log/testlogger"
	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/partition/gpt"
)

const testPartitionSectors = 2048

func testGUID(number uint) string {
	return fmt.Sprintf("5A6F9C52-1D3E-4F0B-9E8A-%012d", number)
}

// makeTestDisk writes a table with five entry slots. The slot numbered empty
// is left unused.
func makeTestDisk(t *testing.T, empty uint) string {
	filename := filepath.Join(t.TempDir(), "disk.raw")
	d, err := diskfs.Create(filename, 10*1024*1024, diskfs.Raw,
		diskfs.SectorSizeDefault)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	var partitions []*gpt.Partition
	start := uint64(2048)
	for number := uint(1); number <= 5; number++ {
		if number == empty {
			partitions = append(partitions, &gpt.Partition{Type: gpt.Unused})
			continue
		}
		partitionType := gpt.LinuxFilesystem
		var attributes Attributes
		switch number {
		case 3:
			partitionType = gpt.Type(rootType)
			attributes = attributes.WithPriority(1).WithSuccessful(true)
		case 4:
			partitionType = gpt.Type(rootType)
			attributes = attributes.WithPriority(2).WithTries(5)
		}
		partitions = append(partitions, &gpt.Partition{
			Start:      start,
			End:        start + testPartitionSectors - 1,
			Size:       testPartitionSectors * 512,
			Type:       partitionType,
			Name:       "part",
			GUID:       testGUID(number),
			Attributes: uint64(attributes),
		})
		start += testPartitionSectors
	}
	err = d.Partition(&gpt.Table{
		ProtectiveMBR:      true,
		Partitions:         partitions,
		LogicalSectorSize:  512,
		PhysicalSectorSize: 512,
	})
	if err != nil {
		t.Fatal(err)
	}
	return filename
}

// readAttributes finds the partition by its GUID, since go-diskfs skips
// empty slots.
func readAttributes(t *testing.T, filename string,
	partition uint) Attributes {
	d, err := diskfs.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	table, err := d.GetPartitionTable()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range table.(*gpt.Table).Partitions {
		if p.GUID == testGUID(partition) {
			return Attributes(p.Attributes)
		}
	}
	t.Fatalf("partition %d not found", partition)
	return 0
}

func TestDiskStore(t *testing.T) {
	filename := makeTestDisk(t, 0)
	store := NewDiskStore(testlogger.New(t))
	if err := store.Initialize(filename); err != nil {
		t.Fatal(err)
	}
	if err := store.SetHighestPriority(3); err != nil {
		t.Fatal(err)
	}
	if err := store.SetTriesLeft(3, 1); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSuccessful(3, false); err != nil {
		t.Fatal(err)
	}
	guid, err := store.PartitionGUID(3)
	if err != nil {
		t.Fatal(err)
	}
	if guid != "5a6f9c52-1d3e-4f0b-9e8a-000000000003" {
		t.Errorf("guid: %s", guid)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	attributes := readAttributes(t, filename, 3)
	if attributes.Priority() != 3 || attributes.Tries() != 1 ||
		attributes.Successful() {
		t.Errorf("partition 3 attributes: 0x%x", uint64(attributes))
	}
	attributes = readAttributes(t, filename, 4)
	if attributes.Priority() != 2 || attributes.Tries() != 5 {
		t.Errorf("partition 4 attributes: 0x%x", uint64(attributes))
	}
}

func TestDiskStoreNoPartitionTable(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "blank.raw")
	d, err := diskfs.Create(filename, 1024*1024, diskfs.Raw,
		diskfs.SectorSizeDefault)
	if err != nil {
		t.Fatal(err)
	}
	d.Close()
	store := NewDiskStore(testlogger.New(t))
	if err := store.Initialize(filename); err == nil {
		store.Close()
		t.Fatal("disk without protective MBR accepted")
	}
}

func TestDiskStoreEmptySlot(t *testing.T) {
	filename := makeTestDisk(t, 2)
	store := NewDiskStore(testlogger.New(t))
	if err := store.Initialize(filename); err != nil {
		t.Fatal(err)
	}
	guid, err := store.PartitionGUID(3)
	if err != nil {
		t.Fatal(err)
	}
	if guid != "5a6f9c52-1d3e-4f0b-9e8a-000000000003" {
		t.Errorf("partition 3 guid: %s", guid)
	}
	if _, err := store.PartitionGUID(2); err == nil {
		t.Error("empty slot 2 reported as a partition")
	}
	if err := store.SetHighestPriority(3); err != nil {
		t.Fatal(err)
	}
	if err := store.SetTriesLeft(3, 1); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	attributes := readAttributes(t, filename, 3)
	if attributes.Priority() != 3 || attributes.Tries() != 1 {
		t.Errorf("partition 3 attributes: 0x%x", uint64(attributes))
	}
	attributes = readAttributes(t, filename, 4)
	if attributes.Priority() != 2 || attributes.Tries() != 5 {
		t.Errorf("partition 4 attributes: 0x%x", uint64(attributes))
	}
	// The rewritten table must keep the empty slot.
	if err := store.Initialize(filename); err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, number := range []uint{1, 3, 4, 5} {
		guid, err := store.PartitionGUID(number)
		if err != nil {
			t.Fatal(err)
		}
		if want := strings.ToLower(testGUID(number)); guid != want {
			t.Errorf("partition %d guid: %s, want %s", number, guid, want)
		}
	}
}

func TestRestoreEmptySlots(t *testing.T) {
	first := &gpt.Partition{Type: gpt.LinuxFilesystem}
	second := &gpt.Partition{Type: gpt.LinuxFilesystem}
	restored, err := restoreEmptySlots([]*gpt.Partition{first, second},
		[]bool{true, false, true, false})
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != 3 || restored[0] != first ||
		restored[1].Type != gpt.Unused || restored[2] != second {
		t.Errorf("restored: %v", restored)
	}
	_, err = restoreEmptySlots([]*gpt.Partition{first},
		[]bool{true, false, true})
	if err == nil {
		t.Error("mismatched slot count accepted")
	}
}
