package keybinding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"

	"altkey/internal/logging"
)

// Entry pairs a generated binding with the base key it was built from
type Entry struct {
	Binding
	Base string `json:"-"`
}

// Generate builds one binding per (base key, modifier) pair, base key major.
// The result depends only on the tables and the id sequence.
func Generate(t Tables, ids IDSource) []Entry {
	entries := make([]Entry, 0, len(t.Keys)*len(t.Modifiers))
	for _, base := range t.Keys {
		for _, mod := range t.Modifiers {
			key := mod + base
			entries = append(entries, Entry{
				Binding: Binding{
					Key:     key,
					Command: key + " " + ids.NewID(),
					When:    t.WhenFor(base),
				},
				Base: base,
			})
		}
	}
	logging.Logger.Debug("Generated keybinding model",
		"keys", len(t.Keys), "modifiers", len(t.Modifiers), "bindings", len(entries))
	return entries
}

// Bindings strips the generation metadata from entries
func Bindings(entries []Entry) []Binding {
	out := make([]Binding, len(entries))
	for i, e := range entries {
		out[i] = e.Binding
	}
	return out
}

var prettyOptions = &pretty.Options{
	Width:    -1, // never fold arrays onto one line
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// RenderJSON renders entries as a JSON array with 2-space indentation and a
// trailing newline
func RenderJSON(entries []Entry) (string, error) {
	data, err := marshal(Bindings(entries))
	if err != nil {
		return "", fmt.Errorf("failed to marshal bindings: %w", err)
	}
	out := pretty.PrettyOptions(data, prettyOptions)
	return strings.TrimRight(string(out), "\n") + "\n", nil
}

// RenderTagged renders entries as JSONC: the RenderJSON layout with a group
// tag comment inside each object, directly above "key"
func RenderTagged(t Tables, entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "[]\n", nil
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, e := range entries {
		key, err := quote(e.Key)
		if err != nil {
			return "", err
		}
		command, err := quote(e.Command)
		if err != nil {
			return "", err
		}
		when, err := quote(e.When)
		if err != nil {
			return "", err
		}

		b.WriteString("  {\n")
		fmt.Fprintf(&b, "    %s\n", t.GroupComment(e.Base, e.Key))
		fmt.Fprintf(&b, "    \"key\": %s,\n", key)
		fmt.Fprintf(&b, "    \"command\": %s,\n", command)
		fmt.Fprintf(&b, "    \"when\": %s\n", when)
		if i < len(entries)-1 {
			b.WriteString("  },\n")
		} else {
			b.WriteString("  }\n")
		}
	}
	b.WriteString("]\n")
	return b.String(), nil
}

// marshal encodes v without HTML escaping, so "&&" in when clauses stays
// literal
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func quote(s string) (string, error) {
	data, err := marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to quote %q: %w", s, err)
	}
	return string(data), nil
}
