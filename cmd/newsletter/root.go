package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFiles []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "newsletter",
		Short:         "Outlook-compatible newsletter editor",
		Long:          "Edits newsletter issues and turns them into HTML that renders the same in Outlook, Gmail and Apple Mail.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "env files to load before reading the environment")

	cmd.AddCommand(
		newServeCmd(opts),
		newNewCmd(),
		newRenderCmd(),
		newLintCmd(),
		newExportCmd(),
	)
	return cmd
}
