package mounts

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/constants"
	"github.com/Cloud-Foundations/postinst/lib/fsutil"
)

const procMounts = constants.ProcMounts

func getMountTable(filename string) (*MountTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	lines, err := fsutil.ReadLines(file)
	if err != nil {
		return nil, err
	}
	table := &MountTable{Entries: make([]*MountEntry, 0, len(lines))}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%s: only %d fields in: %s",
				filename, len(fields), line)
		}
		table.Entries = append(table.Entries, &MountEntry{
			Device:     unescape(fields[0]),
			MountPoint: unescape(fields[1]),
			Type:       fields[2],
			Options:    fields[3],
		})
	}
	return table, nil
}

// unescape decodes the \ooo octal escapes the kernel uses for whitespace and
// backslashes in mount table fields.
func unescape(field string) string {
	if !strings.Contains(field, `\`) {
		return field
	}
	var builder strings.Builder
	for index := 0; index < len(field); index++ {
		if field[index] == '\\' && index+4 <= len(field) {
			if value, err := strconv.ParseUint(field[index+1:index+4], 8,
				8); err == nil {
				builder.WriteByte(byte(value))
				index += 3
				continue
			}
		}
		builder.WriteByte(field[index])
	}
	return builder.String()
}

func isPathPrefix(prefix, path string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || prefix == "/" ||
		path[len(prefix)] == '/'
}

func (mt *MountTable) findEntry(path string) *MountEntry {
	var lastMatch *MountEntry
	for _, entry := range mt.Entries {
		if !isPathPrefix(entry.MountPoint, path) {
			continue
		}
		// Later entries shadow earlier mounts on the same point.
		if lastMatch == nil ||
			len(entry.MountPoint) >= len(lastMatch.MountPoint) {
			lastMatch = entry
		}
	}
	return lastMatch
}
