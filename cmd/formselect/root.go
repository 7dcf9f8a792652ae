package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "formselect",
		Short:         "Render and drive styled select controls.",
		Long:          "formselect renders a labelled select control as HTML or terminal text, or asks for a choice interactively.",
		Version:       os.Getenv("VERSION"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newRenderCmd(), newPromptCmd())
	return rootCmd
}
