package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("signet.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "signet.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "signet.yaml")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("signet.yaml", 0, fmt.Errorf("empty document"))
	require.NotContains(t, err.Error(), ":0:")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("button.style", "must be standard, wide or icon-only", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "button.style", validationErr.Field)
	require.Contains(t, validationErr.Message, "standard, wide or icon-only")
}

func TestRestoreErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("corrupt payload")
	err := NewRestoreError("color_scheme", underlying)

	var restoreErr *RestoreError
	require.ErrorAs(t, err, &restoreErr)
	require.Equal(t, "color_scheme", restoreErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "color_scheme")
}
