package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/signet-ui/signet/internal/tui"
	"github.com/signet-ui/signet/pkg/appearance"
	"github.com/signet-ui/signet/pkg/button"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the resolved appearance matrix",
		Long: `Render resolves the configured style against every color scheme and
interaction state and prints the result as a static table, for
documentation and for terminals without mouse support.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root)
		},
	}

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, root.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	probe, err := buildButton(cfg, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colored := term.IsTerminal(int(os.Stdout.Fd()))

	layout := probe.Appearance().Layout
	fmt.Fprintf(out, "style %s: %dx%d pt, corner radius %d\n",
		probe.Style(), layout.Width, layout.Height, layout.CornerRadius)
	fmt.Fprintf(out, "icon frame: (%d,%d) %dx%d\n",
		layout.IconFrame.X, layout.IconFrame.Y, layout.IconFrame.W, layout.IconFrame.H)
	if layout.HasText {
		fmt.Fprintf(out, "label: %q (%s %.1f, padding %d)\n",
			probe.Appearance().Label, layout.FontName, layout.FontSize, layout.TextPadding)
	} else {
		fmt.Fprintln(out, "label: none")
	}
	fmt.Fprintf(out, "border %.1f, halo shadow alpha %.2f, drop shadow alpha %.2f offset %.0f\n",
		appearance.BorderWidth, appearance.HaloShadow.Alpha,
		appearance.DropShadow.Alpha, appearance.DropShadow.YOffset)
	fmt.Fprintf(out, "accessibility id: %s\n\n", button.AccessibilityIdentifier)

	fmt.Fprintf(out, "%-7s %-9s %-11s %-11s %s\n", "SCHEME", "STATE", "BACKGROUND", "FOREGROUND", "ICON")

	schemes := []appearance.ColorScheme{appearance.SchemeLight, appearance.SchemeDark}
	states := []appearance.State{appearance.StateNormal, appearance.StatePressed, appearance.StateDisabled}

	for _, scheme := range schemes {
		for _, state := range states {
			row, err := button.New(button.Options{
				Style:       probe.Style(),
				ColorScheme: scheme,
				Provider:    probe.Provider(),
			})
			if err != nil {
				return err
			}
			switch state {
			case appearance.StatePressed:
				row.TouchDown()
			case appearance.StateDisabled:
				row.SetEnabled(false)
			}

			a := row.Appearance()
			fmt.Fprintf(out, "%-7s %-9s 0x%08X  0x%08X  %.1f", scheme, state,
				uint32(a.Background), uint32(a.Foreground), a.IconAlpha)
			if colored {
				fmt.Fprintf(out, "  %s", swatch(a, scheme))
			}
			fmt.Fprintln(out)
		}
	}

	return nil
}

// swatch paints a short sample of the row's palette, composited over the
// same backdrop the interactive preview uses.
func swatch(a appearance.Appearance, scheme appearance.ColorScheme) string {
	backdrop := tui.BackdropFor(scheme)
	bg := a.Background.Over(backdrop)
	fg := a.Foreground.Over(bg)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Render(" " + appearance.IconGlyph + " ")
}
