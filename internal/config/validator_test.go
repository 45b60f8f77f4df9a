package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	signeterrors "github.com/signet-ui/signet/pkg/errors"
)

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)

	var validationErr *signeterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateConfigStyleAndScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "all styles accepted",
			mutate: func(c *Config) { c.Button.Style = "icon-only" },
		},
		{
			name:   "empty style accepted",
			mutate: func(c *Config) { c.Button.Style = "" },
		},
		{
			name:    "unknown style rejected",
			mutate:  func(c *Config) { c.Button.Style = "round" },
			wantErr: true,
		},
		{
			name:    "unknown scheme rejected",
			mutate:  func(c *Config) { c.Button.ColorScheme = "solarized" },
			wantErr: true,
		},
		{
			name:    "unknown log level rejected",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "missing version rejected",
			mutate:  func(c *Config) { c.Version = "" },
			wantErr: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := ValidateConfig(cfg)
			if tc.wantErr {
				var validationErr *signeterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
