package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipnotes/shipnotes/internal/changelog"
	"github.com/shipnotes/shipnotes/internal/config"
	"github.com/shipnotes/shipnotes/internal/errors"
	"github.com/shipnotes/shipnotes/internal/gitrepo"
	"github.com/shipnotes/shipnotes/internal/site"
)

var (
	generateOutputFlag string
	generateRemoteFlag string
)

// inputCandidates are the conventional changelog filenames tried in order
// when no input path is given.
var inputCandidates = []string{
	"CHANGELOG.md",
	"changelog.md",
	"CHANGELOG.yaml",
	"changelog.yaml",
}

var generateCmd = &cobra.Command{
	Use:   "generate [changelog]",
	Short: "Render the changelog to a static HTML page",
	Long: `Render a changelog document to a self-contained HTML page.

The input defaults to the first of CHANGELOG.md, changelog.md,
CHANGELOG.yaml, changelog.yaml found in the working directory. Files
ending in .yaml/.yml are validated against the structured changelog
schema; everything else is parsed permissively as the markdown dialect.

Examples:
  shipnotes generate                          # CHANGELOG.md -> stdout
  shipnotes generate docs/CHANGELOG.md        # explicit input
  shipnotes generate -o docs/changelog.html   # write to a file
  shipnotes generate --remote https://raw.githubusercontent.com/acme/api/main/CHANGELOG.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.GroupID = GroupSite
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutputFlag, "output", "o", "",
		"Write the page to a file instead of stdout")
	generateCmd.Flags().StringVar(&generateRemoteFlag, "remote", "",
		"Fetch the changelog from a URL instead of disk")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	releases, source, err := loadReleases(cmd, cfg, args)
	if err != nil {
		return err
	}

	html, err := site.Render(releases, siteParams(cfg))
	if err != nil {
		return fmt.Errorf("rendering changelog page: %w", err)
	}

	output := generateOutputFlag
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s from %s (%d releases)\n",
		output, source, len(releases))
	return nil
}

// loadReleases resolves the changelog source (remote URL, explicit path, or
// discovered candidate) and parses it. The returned string names the source
// for user-facing messages. Remote fetches fall back to a local changelog
// when one resolves.
func loadReleases(cmd *cobra.Command, cfg *config.Configuration, args []string) (changelog.Releases, string, error) {
	if generateRemoteFlag != "" {
		ctx, cancel := context.WithTimeout(cmd.Context(), changelog.DefaultRemoteTimeout)
		defer cancel()

		if input, err := resolveInput(cfg, args); err == nil {
			releases, fromRemote, err := changelog.FetchRemoteWithFallback(ctx, generateRemoteFlag, input)
			if err != nil {
				return nil, "", errors.WrapWithMessage(err, errors.Runtime, "fetching remote changelog",
					"Check the URL is reachable and serves the raw changelog file")
			}
			if !fromRemote {
				fmt.Fprintf(cmd.ErrOrStderr(), "Remote fetch failed; using local %s\n", input)
				return releases, input, nil
			}
			return releases, generateRemoteFlag, nil
		}

		releases, err := changelog.FetchRemote(ctx, generateRemoteFlag)
		if err != nil {
			return nil, "", errors.WrapWithMessage(err, errors.Runtime, "fetching remote changelog",
				"Check the URL is reachable and serves the raw changelog file")
		}
		return releases, generateRemoteFlag, nil
	}

	input, err := resolveInput(cfg, args)
	if err != nil {
		return nil, "", err
	}

	releases, err := changelog.LoadFile(input)
	if err != nil {
		if changelog.IsValidationError(err) {
			return nil, "", errors.WrapWithMessage(err, errors.Runtime, "invalid changelog",
				"Fix the reported field in "+input)
		}
		return nil, "", fmt.Errorf("loading changelog: %w", err)
	}
	return releases, input, nil
}

// resolveInput picks the changelog path: explicit argument, configured
// input, or the first conventional candidate present on disk.
func resolveInput(cfg *config.Configuration, args []string) (string, error) {
	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err != nil {
			return "", errors.NewPrerequisiteError(
				fmt.Sprintf("changelog file %s does not exist", args[0]),
				"Check the path for typos",
				"Run without arguments to discover a conventional changelog filename")
		}
		return args[0], nil
	}

	if cfg.Input != "" {
		if _, err := os.Stat(cfg.Input); err != nil {
			return "", errors.NewPrerequisiteError(
				fmt.Sprintf("configured changelog file %s does not exist", cfg.Input),
				"Fix the 'input' key in your shipnotes config")
		}
		return cfg.Input, nil
	}

	for _, candidate := range inputCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.NewPrerequisiteError(
		"no changelog file found in the working directory",
		"Create a CHANGELOG.md in the working directory",
		"Pass an explicit path: shipnotes generate path/to/CHANGELOG.md")
}

// siteParams maps configuration onto render parameters, discovering the
// repository URL from the git origin remote when it isn't configured.
func siteParams(cfg *config.Configuration) site.Params {
	repoURL := cfg.Site.RepoURL
	if repoURL == "" {
		repoURL = gitrepo.OriginURL(".")
	}

	return site.Params{
		SiteName:    cfg.Site.Name,
		Description: cfg.Site.Description,
		RepoURL:     repoURL,
		DocsURL:     cfg.Site.DocsURL,
		HomeURL:     cfg.Site.HomeURL,
		MaxReleases: cfg.MaxReleases,
		MaxItems:    cfg.MaxItems,
	}
}
