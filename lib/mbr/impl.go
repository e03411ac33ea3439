package mbr

import (
	"io"
)

func decode(reader io.ReaderAt) (*Mbr, error) {
	var mbr Mbr
	if _, err := reader.ReadAt(mbr.raw[:], 0); err != nil {
		return nil, err
	}
	if mbr.raw[0x1FE] == 0x55 && mbr.raw[0x1FF] == 0xAA {
		return &mbr, nil
	}
	return nil, nil
}

func read32LE(address []byte) uint64 {
	return uint64(address[0]) +
		uint64(address[1])<<8 +
		uint64(address[2])<<16 +
		uint64(address[3])<<24
}

func (mbr *Mbr) getPartitionOffset(index uint) uint64 {
	partitionOffset := 0x1BE + 0x10*index
	return 512 * read32LE(mbr.raw[partitionOffset+8:])
}

func (mbr *Mbr) getPartitionSize(index uint) uint64 {
	partitionOffset := 0x1BE + 0x10*index
	return 512 * read32LE(mbr.raw[partitionOffset+12:])
}

func (mbr *Mbr) getPartitionType(index uint) byte {
	if index >= mbr.GetNumPartitions() {
		return 0
	}
	return mbr.raw[0x1BE+0x10*index+4]
}

func (mbr *Mbr) isProtective() bool {
	for index := uint(0); index < mbr.GetNumPartitions(); index++ {
		if mbr.getPartitionType(index) == PartitionTypeGPT {
			return true
		}
	}
	return false
}
