package cmd

import (
	"fmt"
	"os"

	"altkey/internal/annotate"
	"altkey/internal/fsutil"
	"altkey/internal/keybinding"
	"altkey/internal/logging"
)

// CommentsCmd inserts placeholder comments above "command" properties
type CommentsCmd struct {
	Path      string `arg:"" help:"Path to keybindings.json"`
	NoInplace bool   `help:"Don't write files; print to stdout"`

	ids keybinding.IDSource
}

func (c *CommentsCmd) idSource() keybinding.IDSource {
	if c.ids != nil {
		return c.ids
	}
	return keybinding.RandomIDs{}
}

// Run executes the comments command
func (c *CommentsCmd) Run(g *Globals) error {
	if c.NoInplace {
		data, err := os.ReadFile(c.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c.Path, err)
		}
		res := annotate.AddPlaceholders(string(data), c.idSource())
		logging.Logger.Info("Annotated without writing", "path", c.Path, "inserted", res.Inserted)
		fmt.Fprint(g.stdout(), res.Content)
		return nil
	}

	var inserted int
	backup, err := fsutil.RewriteWithBackup(c.Path, func(original []byte) ([]byte, error) {
		res := annotate.AddPlaceholders(string(original), c.idSource())
		inserted = res.Inserted
		return []byte(res.Content), nil
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Annotated in place", "path", c.Path, "backup", backup, "inserted", inserted)
	fmt.Fprintf(g.stdout(), "Wrote %s (backup at %s)\n", c.Path, backup)
	return nil
}
