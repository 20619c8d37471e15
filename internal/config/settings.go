package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"altkey/internal/keybinding"
	"altkey/internal/paths"
)

// Settings represents the structure of $ALTKEY_HOME/settings.json.
// The file may carry // and /* */ comments like the keybindings it describes.
type Settings struct {
	ArrowKeys   StringArray `json:"arrow_keys,omitempty"`
	Debug       *bool       `json:"debug,omitempty"`
	Keys        StringArray `json:"keys,omitempty"`
	LintPath    string      `json:"lint_path,omitempty"`
	MaxLogFiles *int        `json:"max_log_files,omitempty"`
	Modifiers   StringArray `json:"modifiers,omitempty"`
	Seed        *int64      `json:"seed,omitempty"`
	ViKeys      StringArray `json:"vi_keys,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace.
// A literal "," key needs the array form.
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from path, or from $ALTKEY_HOME/settings.json
// when path is empty. Returns empty Settings if the file doesn't exist.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = paths.GetSettingsPath()
	}
	path = paths.ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.LintPath != "" {
		settings.LintPath = paths.ExpandPath(settings.LintPath)
	}

	return &settings, nil
}

// Tables overlays the generation tables configured in settings onto base.
// Unset lists keep the base value.
func (s *Settings) Tables(base keybinding.Tables) keybinding.Tables {
	if s == nil {
		return base
	}
	t := base
	if len(s.Modifiers) > 0 {
		t.Modifiers = s.Modifiers
	}
	if len(s.Keys) > 0 {
		t.Keys = s.Keys
	}
	if len(s.ViKeys) > 0 {
		t.ViKeys = s.ViKeys
	}
	if len(s.ArrowKeys) > 0 {
		t.ArrowKeys = s.ArrowKeys
	}
	return t
}
