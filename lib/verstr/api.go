// Package verstr compares version strings the way a person would, treating
// embedded runs of digits as numbers.
package verstr

// Less returns true if left sorts before right. Runs of decimal digits are
// compared by numeric value, so "0.9.1" sorts before "0.10.1" and "file.9"
// sorts before "file.10". Everything else is compared byte by byte.
func Less(left, right string) bool {
	return compare(left, right) < 0
}

// Compare returns -1, 0 or +1 depending on whether left sorts before, equal to
// or after right.
func Compare(left, right string) int {
	return compare(left, right)
}
