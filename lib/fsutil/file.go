package fsutil

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"time"
)

func readLines(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 || line[0] == '#' {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func touch(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY,
		PublicFilePerms)
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	now := time.Now()
	return os.Chtimes(filename, now, now)
}

func writeFile(filename string, data []byte, perm os.FileMode) error {
	return copyToFile(filename, perm, bytes.NewReader(data),
		uint64(len(data)))
}
