// Package lint checks the comment convention for "key" properties in
// keybindings JSONC files: every "key" line carries exactly one // comment
// directly above it, inside its object, shaped like
//
//	// (tag) (tag) - action {meta}
//
// Linting never writes to the file it reads.
package lint

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"altkey/internal/jsonc"
	"altkey/internal/logging"
)

// Issue messages
const (
	MsgNoSpace    = "key at start of object; no space for comment above"
	MsgMissing    = `missing in-object comment directly above "key"`
	MsgMultiple   = `multiple comment lines found directly above "key"; only one allowed`
	MsgConvention = "comment does not match convention pattern"
)

// DefaultPath is linted when no path is given
const DefaultPath = "references/keybindings.json"

// ErrIssuesFound is returned by strict runs that found at least one issue
var ErrIssuesFound = errors.New("lint issues found")

// ConventionRe matches a comment made of one or more (tag) groups, an
// optional "- action" and an optional {meta} group
var ConventionRe = regexp.MustCompile(`^\s*//\s*(?:\([^)]+\)\s*)+(?:-\s*[^{\n]+)?(?:\s*\{[^}]+\})?\s*$`)

// Issue is a convention violation at a 1-based line
type Issue struct {
	Line    int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s", i.Line, i.Message)
}

// AnalyzeObject checks every "key" line of one captured object
func AnalyzeObject(obj jsonc.Object) []Issue {
	var issues []Issue
	for idx, line := range obj {
		if !jsonc.HasKeyProperty(line.Text) {
			continue
		}
		if idx == 0 {
			issues = append(issues, Issue{Line: line.Number, Message: MsgNoSpace})
			continue
		}

		prev := obj[idx-1]
		if !jsonc.IsLineComment(prev.Text) {
			issues = append(issues, Issue{Line: line.Number, Message: MsgMissing})
			continue
		}
		if idx >= 2 && jsonc.IsLineComment(obj[idx-2].Text) {
			issues = append(issues, Issue{Line: prev.Number, Message: MsgMultiple})
		}
		if !ConventionRe.MatchString(prev.Text) {
			issues = append(issues, Issue{Line: prev.Number, Message: MsgConvention})
		}
	}
	return issues
}

// Lint checks every top-level object in text
func Lint(text string) []Issue {
	objects := jsonc.FindObjects(jsonc.SplitLines(text))

	var issues []Issue
	for _, obj := range objects {
		issues = append(issues, AnalyzeObject(obj)...)
	}

	logging.Logger.Debug("Linted document", "objects", len(objects), "issues", len(issues))
	return issues
}

// File is a linted document: its lines, kept for context output, and the
// issues found
type File struct {
	Path   string
	Lines  []string
	Issues []Issue
}

// LintFile reads path and lints it. The file is opened read-only.
func LintFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(data)
	return &File{
		Path:   path,
		Lines:  jsonc.SplitLines(text),
		Issues: Lint(text),
	}, nil
}
