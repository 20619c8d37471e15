package jsonc

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	keyPropertyRe     = regexp.MustCompile(`"key"\s*:\s*"([^"]+)"`)
	commandPropertyRe = regexp.MustCompile(`"command"\s*:\s*"([^"]*)"`)
)

// KeyValue returns the value of a "key" property on the line, if any
func KeyValue(line string) (string, bool) {
	m := keyPropertyRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// HasCommand reports whether the line holds a "command" property
func HasCommand(line string) bool {
	return commandPropertyRe.MatchString(line)
}

// HasKeyProperty reports whether "key" appears on the line at all. The
// linter uses this looser test so malformed key lines still get checked.
func HasKeyProperty(line string) bool {
	return strings.Contains(line, `"key"`)
}

// OpensObject reports whether the line's first non-space character is '{'
func OpensObject(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "{")
}

// ClosesObject reports whether the line's first non-space character is '}'
func ClosesObject(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "}")
}

// FindObjects captures the top-level objects of the first array in lines.
//
// Array context starts at the first line containing '['. Depth counts every
// '{' and '}' on every line, strings and comments included. An object runs
// from the line where depth leaves zero up to, but not including, the line
// where it returns to zero. Objects that open and close on one line are not
// captured.
func FindObjects(lines []string) []Object {
	var (
		objects []Object
		buf     Object
		depth   int
		inArray bool
	)

	for i, line := range lines {
		if !inArray && strings.Contains(line, "[") {
			inArray = true
		}
		prevDepth := depth
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		switch {
		case !inArray:
		case prevDepth == 0 && depth > 0:
			buf = Object{{Number: i + 1, Text: line}}
		case depth > 0:
			buf = append(buf, Line{Number: i + 1, Text: line})
		case prevDepth > 0 && depth == 0:
			objects = append(objects, buf)
			buf = nil
		}
	}

	return objects
}
