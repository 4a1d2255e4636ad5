package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipnotes/shipnotes/internal/changelog"
	"github.com/shipnotes/shipnotes/internal/errors"
	"github.com/shipnotes/shipnotes/internal/site"
)

var checkOutputFlag string

var checkCmd = &cobra.Command{
	Use:   "check [changelog]",
	Short: "Verify the generated page matches the changelog source",
	Long: `Verify that the generated HTML page is in sync with its source.

The page is regenerated in memory and compared byte-for-byte with the
file on disk. Returns exit code 0 when in sync, or exit code 1 with a
message when the page needs regenerating. Useful as a CI step.

Example:
  shipnotes check -o docs/changelog.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.GroupID = GroupSite
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkOutputFlag, "output", "o", "",
		"Generated page to compare against")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := checkOutputFlag
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		return errors.NewArgumentError(
			"no generated page to check against",
			"Pass --output path/to/changelog.html",
			"Or set the 'output' key in your shipnotes config")
	}

	input, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}

	releases, err := changelog.LoadFile(input)
	if err != nil {
		return fmt.Errorf("loading changelog: %w", err)
	}

	expected, err := site.Render(releases, siteParams(cfg))
	if err != nil {
		return fmt.Errorf("rendering changelog page: %w", err)
	}

	actual, err := os.ReadFile(output)
	if err != nil {
		return errors.NewPrerequisiteError(
			fmt.Sprintf("generated page %s does not exist", output),
			fmt.Sprintf("Run: shipnotes generate %s -o %s", input, output))
	}

	if bytes.Equal([]byte(expected), actual) {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is in sync with %s\n", output, input)
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s is out of sync with %s.\n", output, input)
	fmt.Fprintf(cmd.ErrOrStderr(), "Run: shipnotes generate %s -o %s\n", input, output)
	return NewExitError(ExitFailure)
}
