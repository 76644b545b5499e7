package config

import (
	"os"

	"traitgen/src/errors"
	"traitgen/src/values"

	"github.com/BurntSushi/toml"
)

type Settings struct {
	Profile ProfileConfig `toml:"profile" mapstructure:"profile"`
	Log     LogConfig     `toml:"log" mapstructure:"log"`
}

type ProfileConfig struct {
	// Category is the archetype category matched when none is given.
	Category string `toml:"category" mapstructure:"category"`
	// Top is how many values `traitgen values` lists at each end.
	Top int `toml:"top" mapstructure:"top"`
}

type LogConfig struct {
	JSON  bool   `toml:"json" mapstructure:"json"`
	Level string `toml:"level" mapstructure:"level"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Profile: ProfileConfig{
			Category: "fictional",
			Top:      3,
		},
		Log: LogConfig{
			JSON:  false,
			Level: "warn",
		},
	}
}

// LoadSettings reads path over the defaults. A missing file is not an error.
// An empty path means the default settings location.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path == "" {
		p, err := GetSettingsPath()
		if err != nil {
			return settings, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, errors.Wrapf(err, "failed to read settings %s", path)
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, errors.Wrapf(err, "failed to parse settings %s", path)
	}

	if err := settings.Validate(); err != nil {
		return nil, errors.Wrapf(err, "settings %s", path)
	}

	return settings, nil
}

// Validate checks ranges. Category names are validated by the caller against
// the archetype catalog.
func (s *Settings) Validate() error {
	if s.Profile.Top < 1 || s.Profile.Top > values.Count() {
		return errors.WithHintf(errors.Newf("profile.top = %d is out of range", s.Profile.Top),
			"choose a value between 1 and %d", values.Count())
	}
	if s.Profile.Category == "" {
		return errors.New("profile.category must not be empty")
	}
	return nil
}
