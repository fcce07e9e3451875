// Package cli builds the bannergen command tree.
package cli

import "github.com/spf13/cobra"

// NewRootCmd builds the bannergen root command tree.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bannergen",
		Short:         "Fill HTML banner templates and render them to PNG",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newServeCmd(version))
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}
