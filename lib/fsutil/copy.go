package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Cloud-Foundations/postinst/lib/wsyscall"
)

type copyFunc func(destFilename, sourceFilename string, mode os.FileMode) error

const tmpSuffix = "~"

func copyToFile(destFilename string, perm os.FileMode, reader io.Reader,
	length uint64) error {
	return writeViaTmpfile(destFilename, perm, reader, length, false)
}

func copyToFileExclusive(destFilename string, perm os.FileMode,
	reader io.Reader, length uint64) error {
	// Avoid creating the tmpfile when the answer is already known.
	if _, err := os.Lstat(destFilename); err == nil {
		return os.ErrExist
	}
	return writeViaTmpfile(destFilename, perm, reader, length, true)
}

// writeViaTmpfile writes to a tmpfile beside destFilename and then moves it
// into place. When exclusive, the move is a hard link, which fails rather
// than replace an existing file.
func writeViaTmpfile(destFilename string, perm os.FileMode, reader io.Reader,
	length uint64, exclusive bool) error {
	tmpFilename := destFilename + tmpSuffix
	flags := os.O_CREATE | os.O_WRONLY
	if exclusive {
		flags |= os.O_EXCL
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(tmpFilename, flags, perm)
	if err != nil {
		return err
	}
	defer os.Remove(tmpFilename)
	defer file.Close()
	if err := copyToWriter(file, tmpFilename, reader, length); err != nil {
		return err
	}
	if err := file.Sync(); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	if exclusive {
		return os.Link(tmpFilename, destFilename)
	}
	return os.Rename(tmpFilename, destFilename)
}

func copyToWriter(writer io.Writer, filename string, reader io.Reader,
	length uint64) error {
	if length == 0 {
		if _, err := io.Copy(writer, reader); err != nil {
			return fmt.Errorf("error copying to: %s: %s", filename, err)
		}
		return nil
	}
	nCopied, err := io.CopyN(writer, reader, int64(length))
	if err != nil {
		return fmt.Errorf("error copying to: %s: %s", filename, err)
	}
	if uint64(nCopied) != length {
		return fmt.Errorf("expected length: %d, got: %d for: %s",
			length, nCopied, filename)
	}
	return nil
}

func copyTree(destDir, sourceDir string, copyRegular copyFunc) error {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(destDir, DirPerms); err != nil {
		return err
	}
	for _, entry := range entries {
		err := copyEntry(filepath.Join(destDir, entry.Name()),
			filepath.Join(sourceDir, entry.Name()), copyRegular)
		if err != nil {
			return err
		}
	}
	return nil
}

func copyEntry(destFilename, sourceFilename string,
	copyRegular copyFunc) error {
	var stat wsyscall.Stat_t
	if err := wsyscall.Lstat(sourceFilename, &stat); err != nil {
		return fmt.Errorf("%s: %s", sourceFilename, err)
	}
	switch stat.Mode & wsyscall.S_IFMT {
	case wsyscall.S_IFDIR:
		return copyTree(destFilename, sourceFilename, copyRegular)
	case wsyscall.S_IFREG:
		return copyRegular(destFilename, sourceFilename,
			os.FileMode(stat.Mode)&os.ModePerm)
	case wsyscall.S_IFLNK:
		return copySymlink(destFilename, sourceFilename)
	}
	return fmt.Errorf("%s: unsupported file type", sourceFilename)
}

// copySymlink creates a symlink, leaving anything already at destFilename in
// place.
func copySymlink(destFilename, sourceFilename string) error {
	target, err := os.Readlink(sourceFilename)
	if err != nil {
		return fmt.Errorf("%s: %s", sourceFilename, err)
	}
	if _, err := os.Lstat(destFilename); err == nil {
		return nil
	}
	return os.Symlink(target, destFilename)
}

func copyFile(destFilename, sourceFilename string, mode os.FileMode,
	exclusive bool) error {
	if mode == 0 {
		var stat wsyscall.Stat_t
		if err := wsyscall.Stat(sourceFilename, &stat); err != nil {
			return fmt.Errorf("%s: %s", sourceFilename, err)
		}
		mode = os.FileMode(stat.Mode) & os.ModePerm
	}
	sourceFile, err := os.Open(sourceFilename)
	if err != nil {
		return err
	}
	defer sourceFile.Close()
	if exclusive {
		return copyToFileExclusive(destFilename, mode, sourceFile, 0)
	}
	return copyToFile(destFilename, mode, sourceFile, 0)
}

func copyFileNoClobber(destFilename, sourceFilename string,
	mode os.FileMode) error {
	err := copyFile(destFilename, sourceFilename, mode, true)
	if os.IsExist(err) {
		return nil
	}
	return err
}
