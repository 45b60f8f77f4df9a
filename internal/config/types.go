package config

import (
	"gopkg.in/yaml.v3"
)

// Config represents the full signet configuration document.
type Config struct {
	Version string        `yaml:"version" validate:"required,semver"`
	Button  ButtonConfig  `yaml:"button,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ButtonConfig selects the initial button configuration. Zero values fall
// back to the standard style, the light scheme and an enabled control.
type ButtonConfig struct {
	Style       string `yaml:"style,omitempty" validate:"omitempty,button_style"`
	ColorScheme string `yaml:"color_scheme,omitempty" validate:"omitempty,button_scheme"`
	Provider    string `yaml:"provider,omitempty" validate:"omitempty,max=64"`
	Enabled     bool   `yaml:"enabled,omitempty"`
}

// UnmarshalYAML defaults Enabled to true when the key is absent, so a config
// that never mentions it does not disable the button.
func (b *ButtonConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawButton struct {
		Style       string `yaml:"style"`
		ColorScheme string `yaml:"color_scheme"`
		Provider    string `yaml:"provider"`
		Enabled     *bool  `yaml:"enabled"`
	}

	var raw rawButton
	if err := value.Decode(&raw); err != nil {
		return err
	}

	b.Style = raw.Style
	b.ColorScheme = raw.ColorScheme
	b.Provider = raw.Provider
	if raw.Enabled != nil {
		b.Enabled = *raw.Enabled
	} else {
		b.Enabled = true
	}

	return nil
}

// LoggingConfig tunes the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=json console"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Button: ButtonConfig{
			Style:       "standard",
			ColorScheme: "light",
			Enabled:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
