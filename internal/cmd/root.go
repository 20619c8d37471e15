package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"altkey/internal/config"
	"altkey/internal/logging"
)

// Globals are the flags every tool accepts
type Globals struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Settings    string           `help:"Path to settings file (default: $ALTKEY_HOME/settings.json)" env:"ALTKEY_SETTINGS" placeholder:"PATH"`

	// Streams default to the process's standard streams when nil
	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`

	settings *config.Settings
}

// initialize loads settings and starts logging. Precedence is
// CLI flags > env vars > settings.json > defaults.
func (g *Globals) initialize() error {
	settings, err := config.LoadSettings(g.Settings)
	if err != nil {
		fmt.Fprintf(g.stderr(), "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}
	g.settings = settings

	if g.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("ALTKEY_MAX_LOG_FILES"); !hasEnv {
			if settings.MaxLogFiles != nil {
				g.MaxLogFiles = *settings.MaxLogFiles
			}
		}
	}

	if !g.Debug {
		if _, hasEnv := os.LookupEnv("ALTKEY_DEBUG"); !hasEnv {
			if settings.Debug != nil && *settings.Debug {
				g.Debug = true
			}
		}
	}

	if _, err := logging.Initialize(g.Debug, g.DebugFile, g.MaxLogFiles); err != nil {
		return err
	}
	return nil
}

func (g *Globals) stdin() io.Reader {
	if g.Stdin != nil {
		return g.Stdin
	}
	return os.Stdin
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr != nil {
		return g.Stderr
	}
	return os.Stderr
}

// CLI is the altkey umbrella command exposing every tool as a subcommand
type CLI struct {
	Globals

	Model    ModelCmd    `cmd:"model" help:"Generate a JSON array of keybinding objects"`
	Comments CommentsCmd `cmd:"comments" help:"Add placeholder command comments above each \"command\""`
	Lint     LintCmd     `cmd:"lint" help:"Lint comments above \"key\" properties (read-only)"`
	Strip    StripCmd    `cmd:"strip" help:"Strip comments from JSONC on stdin and print JSON"`
}

// AfterApply initializes settings and logging after CLI parsing
func (c *CLI) AfterApply() error {
	return c.Globals.initialize()
}
