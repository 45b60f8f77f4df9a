package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestButtonConfigEnabledDefault(t *testing.T) {
	t.Parallel()

	var withKey ButtonConfig
	require.NoError(t, yaml.Unmarshal([]byte("style: wide\nenabled: false\n"), &withKey))
	require.False(t, withKey.Enabled)

	var withoutKey ButtonConfig
	require.NoError(t, yaml.Unmarshal([]byte("style: wide\n"), &withoutKey))
	require.True(t, withoutKey.Enabled, "absent key must mean enabled")
}

func TestDefaultConfigValidates(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, ValidateConfig(cfg))
	require.Equal(t, "standard", cfg.Button.Style)
	require.Equal(t, "light", cfg.Button.ColorScheme)
	require.True(t, cfg.Button.Enabled)
}
