package cmd

import (
	"fmt"
	"os"

	"altkey/internal/lint"
	"altkey/internal/logging"
	"altkey/internal/paths"
)

// LintCmd checks the comment convention above "key" properties
type LintCmd struct {
	Path    string `arg:"" optional:"" help:"Path to JSONC keybindings file" default:"references/keybindings.json"`
	Details bool   `help:"Print surrounding lines for each issue"`
	Strict  bool   `help:"Exit with a non-zero status when issues are found"`
}

// Run executes the lint command. Missing or unreadable files are reported
// on stderr and are not errors.
func (l *LintCmd) Run(g *Globals) error {
	path := l.Path
	if path == lint.DefaultPath && g.settings != nil && g.settings.LintPath != "" {
		path = g.settings.LintPath
	}
	path = paths.ExpandPath(path)

	f, err := lint.LintFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(g.stderr(), "ERROR: file not found: %s\n", path)
			return nil
		}
		fmt.Fprintf(g.stderr(), "ERROR: failed to lint %s: %v\n", path, err)
		return nil
	}

	logging.Logger.Info("Lint finished", "path", path, "issues", len(f.Issues))
	lint.NewReporter(g.stdout(), l.Details).Report(f)

	if l.Strict && len(f.Issues) > 0 {
		return fmt.Errorf("%w: %d in %s", lint.ErrIssuesFound, len(f.Issues), path)
	}
	return nil
}
