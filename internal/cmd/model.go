package cmd

import (
	"fmt"
	"os"

	"altkey/internal/keybinding"
	"altkey/internal/logging"
)

const defaultSeed = 42

// ModelCmd generates the synthetic keybindings model
type ModelCmd struct {
	Out    string `help:"Write output to path instead of stdout" placeholder:"PATH"`
	Seeded bool   `help:"Reproducible output from a fixed seed, with a group tag comment per object"`
	Seed   *int64 `help:"Seed used with --seeded (default: settings seed, then 42)"`
}

// seed resolves --seed > settings seed > defaultSeed
func (m *ModelCmd) seed(g *Globals) int64 {
	if m.Seed != nil {
		return *m.Seed
	}
	if g.settings != nil && g.settings.Seed != nil {
		return *g.settings.Seed
	}
	return defaultSeed
}

// Run executes the model command
func (m *ModelCmd) Run(g *Globals) error {
	tables := g.settings.Tables(keybinding.DefaultTables())

	var (
		out string
		err error
	)
	if m.Seeded {
		seed := m.seed(g)
		logging.Logger.Info("Generating seeded model", "seed", seed)
		out, err = keybinding.RenderTagged(tables, keybinding.Generate(tables, keybinding.NewSeededIDs(seed)))
	} else {
		logging.Logger.Info("Generating random model")
		out, err = keybinding.RenderJSON(keybinding.Generate(tables, keybinding.RandomIDs{}))
	}
	if err != nil {
		return err
	}

	if m.Out == "" {
		fmt.Fprint(g.stdout(), out)
		return nil
	}

	if err := os.WriteFile(m.Out, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.Out, err)
	}
	fmt.Fprintf(g.stdout(), "Wrote %s\n", m.Out)
	return nil
}
