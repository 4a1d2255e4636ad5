package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shipnotes/shipnotes/internal/changelog"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List version identifiers in the changelog",
	Args:  cobra.NoArgs,
	RunE:  runVersions,
}

func init() {
	versionsCmd.GroupID = GroupInfo
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input, err := resolveInput(cfg, nil)
	if err != nil {
		return err
	}

	releases, err := changelog.LoadFile(input)
	if err != nil {
		return fmt.Errorf("loading changelog: %w", err)
	}

	for i := range releases {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", releases[i].Version, changelog.DisplayDate(releases[i].Date))
	}
	return nil
}
