// Package lsbrelease reads /etc/lsb-release style key=value files.
package lsbrelease

// Release holds the keys and values of an lsb-release file.
type Release struct {
	Filename string
	keys     []string
	values   map[string]string
}

// Load reads filename.
func Load(filename string) (*Release, error) {
	return load(filename)
}

// Get returns the value for key, or the empty string if it is not present.
func (r *Release) Get(key string) string {
	return r.values[key]
}

// Keys returns the keys in file order.
func (r *Release) Keys() []string {
	return append([]string(nil), r.keys...)
}

// ReadValue is a convenience function which loads filename and returns the
// value for key.
func ReadValue(filename, key string) (string, error) {
	release, err := load(filename)
	if err != nil {
		return "", err
	}
	return release.Get(key), nil
}
