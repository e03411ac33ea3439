/*
Package mbr decodes the Master Boot Record at the start of a disk.

A GPT disk carries a "protective" MBR with a single partition of type 0xEE
spanning the disk, so that tools which do not understand GPT leave it alone.
*/
package mbr

import (
	"io"
)

const (
	// PartitionTypeGPT is the partition type of a protective MBR entry.
	PartitionTypeGPT = 0xEE
)

type Mbr struct {
	raw [512]byte
}

// Decode reads the MBR from the start of reader. If there is no MBR
// signature, nil is returned with no error.
func Decode(reader io.ReaderAt) (*Mbr, error) {
	return decode(reader)
}

func (mbr *Mbr) GetNumPartitions() uint {
	return 4
}

// GetPartitionOffset returns the offset in bytes of partition index.
func (mbr *Mbr) GetPartitionOffset(index uint) uint64 {
	return mbr.getPartitionOffset(index)
}

// GetPartitionSize returns the size in bytes of partition index.
func (mbr *Mbr) GetPartitionSize(index uint) uint64 {
	return mbr.getPartitionSize(index)
}

func (mbr *Mbr) GetPartitionType(index uint) byte {
	return mbr.getPartitionType(index)
}

// IsProtective returns true if the MBR is a GPT protective MBR.
func (mbr *Mbr) IsProtective() bool {
	return mbr.isProtective()
}
