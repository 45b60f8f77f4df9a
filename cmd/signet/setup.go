package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/signet-ui/signet/internal/config"
	"github.com/signet-ui/signet/internal/logger"
	"github.com/signet-ui/signet/pkg/appearance"
	"github.com/signet-ui/signet/pkg/button"
)

// loadConfig parses the file named by --config, or falls back to the
// built-in defaults when the flag is unset.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if strings.TrimSpace(flags.configPath) == "" {
		return config.DefaultConfig(), nil
	}

	abs, err := filepath.Abs(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", abs)
	}

	return config.ParseConfig(abs)
}

func newLogger(cfg *config.Config, verbose bool) (*logger.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}

	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.Format != "json",
	})
}

// buildButton maps the button section of the configuration onto
// construction options. Unset style and scheme strings keep the
// package defaults.
func buildButton(cfg *config.Config, log *logger.Logger) (*button.Button, error) {
	opts := button.Options{
		Provider: cfg.Button.Provider,
		Disabled: !cfg.Button.Enabled,
		Logger:   log.Zerolog(),
	}

	if cfg.Button.Style != "" {
		style, err := appearance.ParseStyle(cfg.Button.Style)
		if err != nil {
			return nil, err
		}
		opts.Style = style
	}

	if cfg.Button.ColorScheme != "" {
		scheme, err := appearance.ParseColorScheme(cfg.Button.ColorScheme)
		if err != nil {
			return nil, err
		}
		opts.ColorScheme = scheme
	}

	return button.New(opts)
}
