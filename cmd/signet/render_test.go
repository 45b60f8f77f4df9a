package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "signet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderPrintsFullMatrix(t *testing.T) {
	output, err := runCommand(t, "render")
	require.NoError(t, err)

	require.Contains(t, output, "style standard: 230x48 pt, corner radius 2")
	require.Contains(t, output, "icon frame: (8,8) 32x32")
	require.Contains(t, output, `label: "Sign in" (Roboto-Bold 14.0, padding 14)`)
	require.Contains(t, output, "accessibility id: SignInButton")

	require.Contains(t, output, "0x4285F4FF", "dark normal row should carry the brand blue background")
	require.Contains(t, output, "0x3367D6FF", "dark pressed row should carry the darkened brand blue")
	require.Contains(t, output, "0xEEEEEEFF", "light pressed row should carry the light grey")
	require.Contains(t, output, "0x00000014  0x00000066  0.4", "disabled rows share colors and a dimmed icon")

	require.Equal(t, 12, strings.Count(output, "0x"), "expected background and foreground for all six rows")
}

func TestRenderHonorsConfiguredStyle(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
button:
  style: wide
  provider: Contoso
`)

	output, err := runCommand(t, "render", "--config", path)
	require.NoError(t, err)

	require.Contains(t, output, "style wide: 312x48 pt")
	require.Contains(t, output, `label: "Sign in with Contoso"`)
}

func TestRenderIconOnlyHasNoLabel(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
button:
  style: icon-only
`)

	output, err := runCommand(t, "render", "--config", path)
	require.NoError(t, err)

	require.Contains(t, output, "style icon-only: 48x48 pt")
	require.Contains(t, output, "label: none")
	require.NotContains(t, output, "Roboto-Bold", "icon-only carries no text metrics")
}

func TestRenderRejectsMissingConfigFile(t *testing.T) {
	_, err := runCommand(t, "render", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "config file does not exist")
}

func TestRenderRejectsInvalidStyleInConfig(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
button:
  style: round
`)

	_, err := runCommand(t, "render", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "button.style", "error should name the offending field")
}
