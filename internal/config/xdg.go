package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// LocalConfigFile is looked up in the working directory before the XDG location.
const LocalConfigFile = "browserselector.json"

// ConfigDir returns the XDG-compliant config directory for browserselector
// Typically ~/.config/browserselector/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "browserselector")
}

// ConfigPath resolves the rules file: an explicit path wins, then
// ./browserselector.json if present, then the XDG config file.
func ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(LocalConfigFile); err == nil {
		return LocalConfigFile
	}
	return filepath.Join(ConfigDir(), "config.json")
}

// HomeDir returns the user's home directory as resolved by xdg.
func HomeDir() string {
	return xdg.Home
}
