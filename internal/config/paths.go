package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file, following
// the XDG Base Directory Specification:
//   - Linux: ~/.config/shipnotes/config.yml
//   - macOS: ~/Library/Application Support/shipnotes/config.yml
//   - Windows: %APPDATA%\shipnotes\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "shipnotes", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .shipnotes/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".shipnotes", "config.yml")
}
