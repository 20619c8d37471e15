// Package keybinding builds the synthetic altKey keybinding model: the
// record type, the generation tables and the rules that derive a record's
// command and when clause from its key.
package keybinding

import (
	"slices"
	"strings"
)

// When clauses selected by base key membership
const (
	WhenDefault = "altKey.enabled"
	WhenVi      = "altKey.enabled && altKey.vi"
	WhenArrows  = "altKey.enabled && altKey.arrows"
)

// Binding is one entry of a keybindings.json array
type Binding struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	When    string `json:"when"`
}

// Group is a named set of base keys used to tag generated records
type Group struct {
	Name string
	Keys []string
}

// Tables holds everything generation depends on besides the id source.
// Modifiers are prefixes ("ctrl+alt+") concatenated with each base key.
type Tables struct {
	Modifiers []string
	Keys      []string
	ViKeys    []string
	ArrowKeys []string
	// Directions are tagged before vi and arrow, in slice order
	Directions []Group
}

// DefaultTables returns the tables altKey ships with
func DefaultTables() Tables {
	return Tables{
		Modifiers: []string{
			"alt+",
			"ctrl+",
			"alt+meta+",
			"ctrl+alt+",
			"shift+alt+",
			"ctrl+alt+meta+",
			"ctrl+shift+alt+",
			"shift+alt+meta+",
			"ctrl+shift+alt+meta+",
		},
		Keys: []string{
			"-", "=", "[", "]", ";", "'", ",", ".",
			"a", "d", "h", "j", "k", "l",
			"end", "home", "pagedown", "left", "down", "up", "right",
		},
		ViKeys:    []string{"h", "j", "k", "l"},
		ArrowKeys: []string{"end", "home", "pagedown", "left", "down", "up", "right"},
		Directions: []Group{
			{Name: "left", Keys: []string{"h", "left", "home"}},
			{Name: "right", Keys: []string{"l", "right", "end"}},
			{Name: "up", Keys: []string{"k", "up"}},
			{Name: "down", Keys: []string{"j", "down", "pagedown"}},
		},
	}
}

// WhenFor returns the when clause for a base key. Modifiers are ignored;
// vi membership wins over arrow membership.
func (t Tables) WhenFor(base string) string {
	if slices.Contains(t.ViKeys, base) {
		return WhenVi
	}
	if slices.Contains(t.ArrowKeys, base) {
		return WhenArrows
	}
	return WhenDefault
}

// Groups returns the tags for a base key in display order:
// directions first, then "vi", then "arrow"
func (t Tables) Groups(base string) []string {
	var tags []string
	for _, g := range t.Directions {
		if slices.Contains(g.Keys, base) {
			tags = append(tags, g.Name)
		}
	}
	if slices.Contains(t.ViKeys, base) {
		tags = append(tags, "vi")
	}
	if slices.Contains(t.ArrowKeys, base) {
		tags = append(tags, "arrow")
	}
	return tags
}

// GroupComment renders the tag comment emitted above "key" in seeded models,
// e.g. "// (left) (vi) - ctrl+h". Keys without a group are tagged (default).
func (t Tables) GroupComment(base, key string) string {
	tags := t.Groups(base)
	if len(tags) == 0 {
		tags = []string{"default"}
	}
	var b strings.Builder
	b.WriteString("//")
	for _, tag := range tags {
		b.WriteString(" (")
		b.WriteString(tag)
		b.WriteString(")")
	}
	b.WriteString(" - ")
	b.WriteString(key)
	return b.String()
}
