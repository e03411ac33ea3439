package firmware

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/constants"
)

const (
	dmiDirectory  = constants.DmiDirectory
	maxSerialSize = 256
)

// Files are tried in order until one holds a usable serial number.
var serialFiles = []string{"product_serial", "board_serial"}

var bogusSerials = map[string]struct{}{
	"0123456789":             {},
	"Default string":         {},
	"None":                   {},
	"System Serial Number":   {},
	"To be filled by O.E.M.": {},
}

func extractSerialNumber(input string) string {
	serial := strings.TrimSpace(input)
	if _, ok := bogusSerials[serial]; ok {
		return ""
	}
	return serial
}

func readSerialFile(filename string) string {
	file, err := os.Open(filename)
	if err != nil {
		return ""
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxSerialSize))
	if err != nil {
		return ""
	}
	return extractSerialNumber(string(data))
}

func readSystemSerial(dirname string) string {
	for _, name := range serialFiles {
		if serial := readSerialFile(filepath.Join(dirname, name)); serial != "" {
			return serial
		}
	}
	return ""
}
