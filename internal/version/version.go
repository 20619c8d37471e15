package version

import "fmt"

// Tagline is the toolkit's tagline used in help text
const Tagline = "Tools for altKey keybindings JSONC files"

// Build information injected at build time via ldflags
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information for the named tool
func Info(name string) string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, go: %s)",
		name, Version, Commit, Date, GoVersion)
}
