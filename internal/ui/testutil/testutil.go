// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/nowplaying/internal/ui/frame"
)

// StripANSI removes escape sequences from a string for easier testing.
// Styles, cursor movements and graphics commands are all dropped.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != "" || substr == ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	// Trim trailing empty lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// BufferLines returns the unstyled rows of buf, trailing spaces removed.
func BufferLines(buf *frame.Buffer) []string {
	area := buf.Area()
	lines := make([]string, 0, area.Height)
	for y := area.Y; y < area.Bottom(); y++ {
		lines = append(lines, strings.TrimRight(buf.PlainLine(y), " "))
	}
	return lines
}
