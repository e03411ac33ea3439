package loadflags

import (
	"path/filepath"
)

// LoadForDaemon will load flags from the flags.default and flags.extra files
// in the /etc/<progName> directory. Missing files are ignored.
func LoadForDaemon(progName string) error {
	return loadFlags(filepath.Join("/etc", progName))
}

// LoadFromDirectory is similar to LoadForDaemon, except the directory
// containing the flags files is specified.
func LoadFromDirectory(dirname string) error {
	return loadFlags(dirname)
}
