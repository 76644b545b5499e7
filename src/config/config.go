package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "traitgen"

// GetConfigDir returns the XDG configuration directory for traitgen
// ($XDG_CONFIG_HOME/traitgen, or the platform equivalent).
func GetConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
	return filepath.Join(xdg.ConfigHome, appName), nil
}

// GetSettingsPath returns the location of config.toml
func GetSettingsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}
