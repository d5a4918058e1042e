// Package config holds application constants and resolves the location of
// the data file. The data file lives in a cloud-synced folder when one can
// be found so the document travels across machines.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	AppName = "timetrack"

	// DataFolder and DataFile name the document inside the synced folder.
	DataFolder = "TimeTrack"
	DataFile   = "data.json"

	// EnvDataPath overrides the data file location. Useful for tests and
	// custom setups.
	EnvDataPath = "TIMETRACK_DATA_PATH"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	DefaultColor = "#3B82F6" // Blue
)

// DefaultProjectColors is the palette offered for new projects. The store
// does not validate membership; any string is accepted as a color.
var DefaultProjectColors = []string{
	"#EF4444", // Red
	"#F97316", // Orange
	"#EAB308", // Yellow
	"#22C55E", // Green
	"#3B82F6", // Blue (default)
	"#8B5CF6", // Purple
	"#EC4899", // Pink
}

var colorEmojis = map[string]string{
	"#EF4444": "\U0001F534",
	"#F97316": "\U0001F7E0",
	"#EAB308": "\U0001F7E1",
	"#22C55E": "\U0001F7E2",
	"#3B82F6": "\U0001F535",
	"#8B5CF6": "\U0001F7E3",
	"#EC4899": "\U0001FA77",
}

// ColorEmoji maps a palette color to a colored dot for terminal output.
// Unknown colors get a white circle.
func ColorEmoji(hex string) string {
	if e, ok := colorEmojis[strings.ToUpper(hex)]; ok {
		return e
	}
	return "⚪"
}

// GoogleDrivePath probes for a Google Drive folder, newest layout first:
// the macOS CloudStorage mount, then the legacy locations. Returns "" when
// no Drive folder exists.
func GoogleDrivePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	cloudStorage := filepath.Join(homeDir, "Library", "CloudStorage")
	if entries, err := os.ReadDir(cloudStorage); err == nil {
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), "GoogleDrive-") {
				return filepath.Join(cloudStorage, entry.Name(), "My Drive")
			}
		}
	}

	legacyPaths := []string{
		filepath.Join(homeDir, "Google Drive", "My Drive"),
		filepath.Join(homeDir, "Google Drive"),
		filepath.Join(homeDir, "GoogleDrive"),
	}
	for _, p := range legacyPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// LocalFallbackPath returns the data file path under the user config
// directory, used when no cloud-synced folder is found.
func LocalFallbackPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", AppName, DataFile)
	}
	return filepath.Join(configDir, AppName, DataFile)
}

// ResolveDataPath returns the data file path, applying the precedence:
// explicit path > TIMETRACK_DATA_PATH > Google Drive folder > local fallback.
func ResolveDataPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvDataPath); env != "" {
		return env
	}
	if drive := GoogleDrivePath(); drive != "" {
		return filepath.Join(drive, DataFolder, DataFile)
	}
	return LocalFallbackPath()
}
