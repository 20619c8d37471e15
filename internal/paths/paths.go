package paths

import (
	"os"
	"path/filepath"
)

// GetAltkeyHome returns ALTKEY_HOME or ~/.altkey default
func GetAltkeyHome() string {
	altkeyHome := os.Getenv("ALTKEY_HOME")
	if altkeyHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".altkey"
		}
		return filepath.Join(homeDir, ".altkey")
	}
	return ExpandPath(altkeyHome)
}

// GetSettingsPath returns $ALTKEY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetAltkeyHome(), "settings.json")
}

// BackupPath returns the path the annotator copies the original file to
// before rewriting it in place
func BackupPath(path string) string {
	return path + ".bak"
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
