package jsonc

import (
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
)

var (
	lineCommentRe  = regexp.MustCompile(`//.*`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Strip removes // comments through end of line, then /* */ spans (which may
// cross lines), and trims surrounding whitespace.
//
// It does not know about string literals: a "//" inside a value is treated
// as a comment. StripStringAware handles that case.
func Strip(text string) string {
	text = lineCommentRe.ReplaceAllString(text, "")
	text = blockCommentRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// StripStringAware removes comments and trailing commas while leaving string
// literals alone, then trims surrounding whitespace. Blank space is left
// where comments were.
func StripStringAware(text string) string {
	return strings.TrimSpace(string(jsonc.ToJSON([]byte(text))))
}
