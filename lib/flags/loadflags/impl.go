package loadflags

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cloud-Foundations/postinst/lib/fsutil"
)

var flagFiles = []string{"flags.default", "flags.extra"}

func loadFlags(dirname string) error {
	for _, name := range flagFiles {
		if err := loadFlagsFromFile(filepath.Join(dirname, name)); err != nil {
			return err
		}
	}
	return nil
}

func loadFlagsFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()
	lines, err := fsutil.ReadLines(file)
	if err != nil {
		return fmt.Errorf("error reading: %s: %s", filename, err)
	}
	for _, line := range lines {
		if line[0] == ';' {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("%s: bad line, cannot split name from value: %s",
				filename, line)
		}
		name = strings.TrimPrefix(strings.TrimSpace(name), "-")
		if name == "" || strings.ContainsAny(name, " \t") {
			return fmt.Errorf("%s: bad line, invalid flag name: %s",
				filename, line)
		}
		err := flag.CommandLine.Set(name, strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %s", filename, err)
		}
	}
	return nil
}
