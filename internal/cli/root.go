// Package cli implements the shipnotes command tree.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipnotes/shipnotes/internal/config"
	"github.com/shipnotes/shipnotes/internal/errors"
)

// Command group IDs for grouped help output.
const (
	GroupSite = "site"
	GroupInfo = "info"
)

var configPathFlag string

var rootCmd = &cobra.Command{
	Use:   "shipnotes",
	Short: "Generate a static changelog page from your CHANGELOG",
	Long: `shipnotes turns a CHANGELOG.md (or CHANGELOG.yaml) into a
self-contained HTML changelog page for a documentation site.

The page gets a timeline layout with a heuristically inferred title and
tag badges per release, and a narrow inline markup subset (bold, inline
code, links) converted to HTML.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSite, Title: "Site generation:"},
		&cobra.Group{ID: GroupInfo, Title: "Changelog inspection:"},
	)
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "",
		"Project config file path (default: .shipnotes/config.yml)")
}

// Execute runs the root command and prints any resulting error in the
// structured terminal format.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		fmt.Fprint(os.Stderr, errors.FormatError(cliErr))
	} else if !isSilentExit(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return err
}

// loadConfig loads the tool configuration, honoring the --config flag.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration, "loading configuration",
			"Check the YAML syntax of .shipnotes/config.yml",
			"Run with --config to point at a different config file")
	}
	return cfg, nil
}
