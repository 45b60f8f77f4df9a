package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "signet",
		Short: "Preview and inspect the sign-in button control",
		Long: `Signet hosts the sign-in button control in a terminal.

Running signet with no arguments opens the interactive preview, where the
button can be pressed, restyled and toggled with the keyboard or mouse.
Use 'signet render' for a static appearance matrix on non-interactive
terminals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(flags, previewOptions{})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a signet configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
