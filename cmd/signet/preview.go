package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/signet-ui/signet/internal/restore"
	"github.com/signet-ui/signet/internal/tui"
	"github.com/signet-ui/signet/pkg/button"
)

type previewOptions struct {
	noRestore bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open the interactive button preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noRestore, "no-restore", false, "Ignore the previously saved style and color scheme")

	return cmd
}

func runPreview(root *rootFlags, opts previewOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("preview needs an interactive terminal; use 'signet render' instead")
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, root.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	btn, err := buildButton(cfg, log)
	if err != nil {
		return err
	}

	var store *restore.Store
	if !opts.noRestore {
		store, err = restore.Open()
		if err != nil {
			log.Warn("saved state unavailable, continuing without persistence")
			store = restore.NewStore(nil)
		}

		snap, found, err := store.Load()
		if err != nil {
			log.Error(err, "could not read saved state")
		} else if found {
			if err := btn.Restore(snap); err != nil {
				log.Error(err, "saved state rejected, keeping configured appearance")
			} else {
				log.WithFields(map[string]any{
					button.StyleKey:       snap.Style,
					button.ColorSchemeKey: snap.ColorScheme,
				}).Debug("restored saved state")
			}
		}
	}

	p := tea.NewProgram(tui.NewModel(btn), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		log.WithFields(map[string]any{"presses": m.Presses()}).Info("preview closed")
	}

	if store != nil {
		if err := store.Save(btn.Snapshot()); err != nil {
			log.Error(err, "could not save state")
		}
	}

	return nil
}
