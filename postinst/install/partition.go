package install

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/errors"
)

func endsInDigit(name string) bool {
	return len(name) > 0 && isDigit(name[len(name)-1])
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func makePartitionDevice(baseDevice string, number uint) string {
	if endsInDigit(baseDevice) {
		return baseDevice + "p" + strconv.FormatUint(uint64(number), 10)
	}
	return baseDevice + strconv.FormatUint(uint64(number), 10)
}

func parsePartitionDevice(device string) (Partition, error) {
	index := len(device)
	for index > 0 && isDigit(device[index-1]) {
		index--
	}
	if index == len(device) || index == 0 {
		return Partition{}, errors.NewInvalidTargetError(
			fmt.Sprintf("no partition number in: %s", device))
	}
	number, err := strconv.ParseUint(device[index:], 10, 32)
	if err != nil || number < 1 {
		return Partition{}, errors.NewInvalidTargetError(
			fmt.Sprintf("bad partition number in: %s", device))
	}
	baseDevice := device[:index]
	if strings.HasSuffix(baseDevice, "p") &&
		endsInDigit(baseDevice[:len(baseDevice)-1]) {
		baseDevice = baseDevice[:len(baseDevice)-1]
	}
	partition := NewPartition(baseDevice, uint(number))
	if partition.Device != device {
		return Partition{}, errors.NewInvalidTargetError(
			fmt.Sprintf("not a partition device: %s", device))
	}
	return partition, nil
}
