package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/monkey/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRenderer(cmd.OutOrStdout()).Version(version.Get())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
