/*
Package linescan finds lines of text containing a sequence of substrings.

A line matches when every required substring occurs in it, each one after
the end of the previous one. No regular expressions are involved, so the
substrings may contain any characters.
*/
package linescan

// Line is one line of text, split from its terminator so that the terminator
// can be preserved when the line is replaced.
type Line struct {
	Text       string
	Terminator string
}

// Contains returns true if line contains each of substrings in order.
func Contains(line string, substrings ...string) bool {
	return containsInOrder(line, substrings)
}

// FindAll returns the indices of the lines which contain each of substrings
// in order.
func FindAll(lines []Line, substrings ...string) []int {
	return findAll(lines, substrings)
}

// FindFirst returns the index of the first line which contains each of
// substrings in order, or -1.
func FindFirst(lines []Line, substrings ...string) int {
	return findFirst(lines, substrings)
}

// Join reassembles lines, each followed by its own terminator.
func Join(lines []Line) string {
	return join(lines)
}

// Split splits text into lines. The "\n" or "\r\n" terminating each line is
// kept with it. The last line has an empty terminator if text does not end
// with a newline.
func Split(text string) []Line {
	return split(text)
}
