// Package annotate inserts placeholder command comments into keybindings
// JSONC files.
package annotate

import (
	"fmt"
	"strings"

	"altkey/internal/jsonc"
	"altkey/internal/keybinding"
	"altkey/internal/logging"
)

// Result is the outcome of annotating one document
type Result struct {
	Content  string
	Inserted int
}

// Placeholder renders the comment inserted above a "command" line, without
// a line terminator
func Placeholder(indent, key, id string) string {
	return fmt.Sprintf("%s// \"command\": \"%s %s\"", indent, key, id)
}

// lineEnding returns the terminator of line, "\n" when it has none
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// AddPlaceholders inserts a placeholder above every "command" property that
// does not already have one. Existing lines are kept byte for byte.
//
// An object starts on a line beginning with '{' and ends on a line beginning
// with '}'. Nested objects are not tracked. A "command" seen before any "key"
// in its object is left alone.
func AddPlaceholders(text string, ids keybinding.IDSource) Result {
	lines := jsonc.SplitLinesKeepEnds(text)
	out := make([]string, 0, len(lines))

	var (
		currentKey string
		inObject   bool
		inserted   int
	)

	for _, line := range lines {
		switch {
		case jsonc.OpensObject(line):
			inObject = true
			currentKey = ""
		case inObject && jsonc.ClosesObject(line):
			inObject = false
			currentKey = ""
		case !inObject, jsonc.IsLineComment(line):
			// placeholders are comments; they must not count as properties
		default:
			if key, ok := jsonc.KeyValue(line); ok {
				currentKey = key
				break
			}
			if !jsonc.HasCommand(line) || currentKey == "" {
				break
			}
			if hasPlaceholder(out, currentKey) {
				break
			}
			out = append(out, Placeholder(jsonc.Indent(line), currentKey, ids.NewID())+lineEnding(line))
			inserted++
			logging.Logger.Debug("Inserted placeholder", "key", currentKey)
		}
		out = append(out, line)
	}

	return Result{Content: strings.Join(out, ""), Inserted: inserted}
}

// hasPlaceholder reports whether the last non-blank emitted line is a
// comment naming key and a "command": property
func hasPlaceholder(out []string, key string) bool {
	i := len(out) - 1
	for i >= 0 && jsonc.IsBlank(out[i]) {
		i--
	}
	if i < 0 {
		return false
	}
	prev := out[i]
	return jsonc.IsLineComment(prev) &&
		strings.Contains(prev, `"command":`) &&
		strings.Contains(prev, key)
}
