package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shipnotes/shipnotes/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shipnotes %s\n", build.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", build.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", build.BuildDate)
	},
}

func init() {
	versionCmd.GroupID = GroupInfo
	rootCmd.AddCommand(versionCmd)
}
