// Package config provides hierarchical configuration management for
// shipnotes using koanf. Configuration is loaded with priority:
// environment variables > project config (.shipnotes/config.yml) >
// user config (~/.config/shipnotes/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides
// (e.g. SHIPNOTES_OUTPUT, SHIPNOTES_SITE__NAME).
const envPrefix = "SHIPNOTES_"

// SiteConfig holds the presentational parameters flowing into the page
// template chrome.
type SiteConfig struct {
	// Name is the project name shown in the page header and titles.
	Name string `koanf:"name"`
	// Description is the footer tagline and meta description.
	Description string `koanf:"description"`
	// RepoURL links the GitHub navigation entries. When empty, it is
	// discovered from the git origin remote if one exists.
	RepoURL string `koanf:"repo_url"`
	// DocsURL links the Docs navigation entry (optional).
	DocsURL string `koanf:"docs_url"`
	// HomeURL is the Home link target (default: index.html).
	HomeURL string `koanf:"home_url"`
}

// Configuration represents the shipnotes CLI tool configuration.
type Configuration struct {
	// Input is the changelog source path. Empty means discover one of the
	// conventional candidates (CHANGELOG.md, changelog.md, CHANGELOG.yaml,
	// changelog.yaml).
	Input string `koanf:"input"`
	// Output is the HTML destination path. Empty means standard output.
	Output string `koanf:"output"`
	// Site configures the static page chrome.
	Site SiteConfig `koanf:"site"`
	// MaxReleases caps how many releases the document renders (default 15).
	MaxReleases int `koanf:"max_releases"`
	// MaxItems caps how many items each section renders (default 10).
	MaxItems int `koanf:"max_items"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
// projectConfigPath overrides the project config location when non-empty.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		_ = k.Set(key, value)
	}

	userPath, err := UserConfigPath()
	if err == nil {
		if err := loadFileIfExists(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	if projectConfigPath == "" {
		projectConfigPath = ProjectConfigPath()
	}
	if err := loadFileIfExists(k, projectConfigPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file into k when the file exists.
// A missing file is not an error; config files are optional at every level.
func loadFileIfExists(k *koanf.Koanf, path, configType string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// envTransform maps SHIPNOTES_SITE__NAME to site.name: the prefix is
// stripped, the remainder lowercased, and double underscores become dots.
func envTransform(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
