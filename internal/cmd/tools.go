package cmd

import (
	"github.com/alecthomas/kong"

	"altkey/internal/version"
)

// Each tool below is the root of a standalone binary: the global flags plus
// one command's flags, run without a subcommand.

// ModelTool is the keybindings-model binary
type ModelTool struct {
	Globals
	ModelCmd
}

// AfterApply initializes settings and logging after CLI parsing
func (t *ModelTool) AfterApply() error { return t.Globals.initialize() }

// Run executes the tool
func (t *ModelTool) Run() error { return t.ModelCmd.Run(&t.Globals) }

// CommentsTool is the keybindings-command-comments binary
type CommentsTool struct {
	Globals
	CommentsCmd
}

// AfterApply initializes settings and logging after CLI parsing
func (t *CommentsTool) AfterApply() error { return t.Globals.initialize() }

// Run executes the tool
func (t *CommentsTool) Run() error { return t.CommentsCmd.Run(&t.Globals) }

// LintTool is the keybindings-lint-comments binary
type LintTool struct {
	Globals
	LintCmd
}

// AfterApply initializes settings and logging after CLI parsing
func (t *LintTool) AfterApply() error { return t.Globals.initialize() }

// Run executes the tool
func (t *LintTool) Run() error { return t.LintCmd.Run(&t.Globals) }

// StripTool is the keybindings-remove-comments binary
type StripTool struct {
	Globals
	StripCmd
}

// AfterApply initializes settings and logging after CLI parsing
func (t *StripTool) AfterApply() error { return t.Globals.initialize() }

// Run executes the tool
func (t *StripTool) Run() error { return t.StripCmd.Run(&t.Globals) }

// Options returns the kong options shared by every entry point
func Options(name, description string) []kong.Option {
	return []kong.Option{
		kong.Name(name),
		kong.Description(description),
		kong.Vars{
			"version": version.Info(name),
		},
		kong.UsageOnError(),
	}
}
