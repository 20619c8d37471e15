package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"altkey/internal/jsonc"
	"altkey/internal/logging"
)

// ErrInvalidJSON is returned by --validate when stripping left invalid JSON
var ErrInvalidJSON = errors.New("stripped output is not valid JSON")

// StripCmd reads JSONC from stdin and prints it without comments
type StripCmd struct {
	StringAware bool `help:"Leave comment markers inside string literals alone"`
	Validate    bool `help:"Fail instead of printing when the result is not valid JSON"`
}

// Run executes the strip command
func (s *StripCmd) Run(g *Globals) error {
	data, err := io.ReadAll(g.stdin())
	if err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}

	var out string
	if s.StringAware {
		out = jsonc.StripStringAware(string(data))
	} else {
		out = jsonc.Strip(string(data))
	}
	logging.Logger.Debug("Stripped comments", "in_bytes", len(data), "out_bytes", len(out))

	if s.Validate && !gjson.Valid(out) {
		return ErrInvalidJSON
	}

	fmt.Fprintln(g.stdout(), out)
	return nil
}
