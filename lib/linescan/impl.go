package linescan

import (
	"strings"
)

func containsInOrder(line string, substrings []string) bool {
	for _, substring := range substrings {
		index := strings.Index(line, substring)
		if index < 0 {
			return false
		}
		line = line[index+len(substring):]
	}
	return true
}

func findAll(lines []Line, substrings []string) []int {
	var indices []int
	for index, line := range lines {
		if containsInOrder(line.Text, substrings) {
			indices = append(indices, index)
		}
	}
	return indices
}

func findFirst(lines []Line, substrings []string) int {
	for index, line := range lines {
		if containsInOrder(line.Text, substrings) {
			return index
		}
	}
	return -1
}

func join(lines []Line) string {
	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString(line.Text)
		builder.WriteString(line.Terminator)
	}
	return builder.String()
}

func split(text string) []Line {
	var lines []Line
	for len(text) > 0 {
		index := strings.IndexByte(text, '\n')
		if index < 0 {
			lines = append(lines, Line{Text: text})
			break
		}
		line := Line{Text: text[:index], Terminator: "\n"}
		if strings.HasSuffix(line.Text, "\r") {
			line.Text = line.Text[:len(line.Text)-1]
			line.Terminator = "\r\n"
		}
		lines = append(lines, line)
		text = text[index+1:]
	}
	return lines
}
