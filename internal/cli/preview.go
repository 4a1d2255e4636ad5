package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shipnotes/shipnotes/internal/changelog"
)

var (
	previewLastFlag  int
	previewPlainFlag bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [version]",
	Short: "Preview parsed releases in the terminal",
	Long: `Preview the parsed changelog in the terminal with colors and icons.

By default, shows the 5 most recent releases. Pass a version argument to
see one specific release, or use --last to control the count.

Examples:
  shipnotes preview              # Show 5 most recent releases
  shipnotes preview v0.6.0       # Show one version
  shipnotes preview 0.6.0        # Same (v prefix optional)
  shipnotes preview --last 10    # Show 10 most recent releases
  shipnotes preview --plain      # Plain output (no colors/icons)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.GroupID = GroupInfo
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewLastFlag, "last", 5, "Number of releases to show")
	previewCmd.Flags().BoolVar(&previewPlainFlag, "plain", false, "Plain text output (no colors/icons)")
}

func runPreview(cmd *cobra.Command, args []string) error {
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

	opts := changelog.FormatOptions{Plain: previewPlainFlag}

	if len(args) == 1 {
		return showRelease(releases, args[0], cmd, opts)
	}

	return showRecentReleases(releases, previewLastFlag, cmd, opts)
}

func showRelease(releases changelog.Releases, version string, cmd *cobra.Command, opts changelog.FormatOptions) error {
	r, err := releases.Get(version)
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if stderrors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
			fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
			for _, v := range releases.Versions() {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", v)
			}
			return NewExitError(ExitInvalidArguments)
		}
		return fmt.Errorf("getting version: %w", err)
	}

	return changelog.FormatRelease(r, cmd.OutOrStdout(), opts, 0)
}

func showRecentReleases(releases changelog.Releases, n int, cmd *cobra.Command, opts changelog.FormatOptions) error {
	shown := releases.FirstN(n)
	if len(shown) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No releases found.")
		return nil
	}

	if err := changelog.FormatTerminal(shown, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("formatting releases: %w", err)
	}

	if len(releases) > len(shown) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%d of %d releases shown. Use --last %d to see all)\n",
			len(shown), len(releases), len(releases))
	}

	return nil
}
