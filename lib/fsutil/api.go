package fsutil

import (
	"io"
	"os"

	"github.com/Cloud-Foundations/postinst/lib/wsyscall"
)

const (
	DirPerms = wsyscall.S_IRWXU | wsyscall.S_IRGRP | wsyscall.S_IXGRP |
		wsyscall.S_IROTH | wsyscall.S_IXOTH
	PrivateFilePerms = wsyscall.S_IRUSR | wsyscall.S_IWUSR
	PublicFilePerms  = PrivateFilePerms | wsyscall.S_IRGRP | wsyscall.S_IROTH
)

// CopyFile will create a new file, copies data from the sourceFilename to a
// tmpfile and then atomically renames the tmpfile to destFilename, ensuring
// that the file never has incomplete data.
// If there are any errors, then destFilename is unchanged.
// If mode is zero, the permissions of sourceFilename are used.
func CopyFile(destFilename, sourceFilename string, mode os.FileMode) error {
	return copyFile(destFilename, sourceFilename, mode, false)
}

// CopyToFile will create a new file, write length bytes from reader to a
// tmpfile and then atomically renames the tmpfile to destFilename, ensuring
// that the file never has incomplete data.
// If length is zero all remaining bytes from reader are written. If there are
// any errors, then destFilename is unchanged.
func CopyToFile(destFilename string, perm os.FileMode, reader io.Reader,
	length uint64) error {
	return copyToFile(destFilename, perm, reader, length)
}

// CopyToFileExclusive is similar to CopyToFile, except that it fails if
// destFilename already exists.
func CopyToFileExclusive(destFilename string, perm os.FileMode,
	reader io.Reader, length uint64) error {
	return copyToFileExclusive(destFilename, perm, reader, length)
}

// CopyTree will copy a directory tree. Existing files are replaced.
func CopyTree(destDir, sourceDir string) error {
	return copyTree(destDir, sourceDir, CopyFile)
}

// CopyTreeNoClobber will merge a directory tree into destDir. Files which
// already exist in destDir are left untouched. This is the equivalent of
// "cp -nR".
func CopyTreeNoClobber(destDir, sourceDir string) error {
	return copyTree(destDir, sourceDir, copyFileNoClobber)
}

// ReadLines will read lines from a reader. Comment lines (i.e. lines beginning
// with '#') are skipped.
func ReadLines(reader io.Reader) ([]string, error) {
	return readLines(reader)
}

// Touch will create filename if it does not exist, or will update its
// modification time if it does. The contents are never changed.
func Touch(filename string) error {
	return touch(filename)
}

// WriteFile will atomically replace filename with data, using the same
// tmpfile and rename strategy as CopyToFile.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return writeFile(filename, data, perm)
}
