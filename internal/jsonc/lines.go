// Package jsonc scans keybindings JSONC text one line at a time.
//
// Nothing here parses JSON. Object boundaries are approximated from the
// braces on each line, which is enough for the layout keybindings files use
// (one property per line, braces on their own lines) and wrong for anything
// more exotic. Callers accept that trade.
package jsonc

import (
	"strings"
	"unicode"
)

// Line is a 1-based line number and its text without the line terminator
type Line struct {
	Number int
	Text   string
}

// Object is the run of lines captured for one top-level array element
type Object []Line

// SplitLines splits text into lines without terminators. A trailing newline
// does not produce an empty last line, and "\r\n" endings are accepted.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// SplitLinesKeepEnds splits text into lines that keep their terminators, so
// joining the result reproduces text exactly
func SplitLinesKeepEnds(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsLineComment reports whether the line is a // comment
func IsLineComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "//")
}

// IsBlank reports whether the line holds only whitespace
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Indent returns the leading whitespace of line
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}
