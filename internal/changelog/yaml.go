package changelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the root structure of a CHANGELOG.yaml source file.
// Versions are ordered newest first.
type Document struct {
	Project  string        `yaml:"project"`
	Versions []VersionSpec `yaml:"versions"`
}

// VersionSpec is a single version entry in a YAML changelog. Version should
// be a bare semantic version (e.g. "0.6.0") or the special identifier
// "unreleased". Date is required for released versions (YYYY-MM-DD) and
// must be empty for unreleased.
type VersionSpec struct {
	Version string  `yaml:"version"`
	Date    string  `yaml:"date,omitempty"`
	Changes Changes `yaml:"changes"`
}

// Changes groups change entries by Keep a Changelog category.
type Changes struct {
	Added      []string `yaml:"added,omitempty"`
	Changed    []string `yaml:"changed,omitempty"`
	Deprecated []string `yaml:"deprecated,omitempty"`
	Removed    []string `yaml:"removed,omitempty"`
	Fixed      []string `yaml:"fixed,omitempty"`
	Security   []string `yaml:"security,omitempty"`
}

// IsEmpty reports whether the Changes struct has no entries in any category.
func (c Changes) IsEmpty() bool {
	return len(c.Added) == 0 &&
		len(c.Changed) == 0 &&
		len(c.Deprecated) == 0 &&
		len(c.Removed) == 0 &&
		len(c.Fixed) == 0 &&
		len(c.Security) == 0
}

// ValidationError is a YAML changelog validation error with field context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// LoadYAMLFile reads, validates, and converts a CHANGELOG.yaml file into
// release records.
func LoadYAMLFile(path string) (Releases, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// LoadYAML reads and validates a YAML changelog from r and converts it into
// the same Release records the markdown parser produces, so the renderer is
// source-agnostic. Unlike the permissive markdown parser, the YAML source
// format is validated: schema violations return a ValidationError.
func LoadYAML(r io.Reader) (Releases, error) {
	var doc Document

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing changelog YAML: %w", err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	return convertDocument(&doc), nil
}

// convertDocument maps a validated YAML document onto Release records.
// Categories appear in standard Keep a Changelog order; empty categories
// are omitted.
func convertDocument(doc *Document) Releases {
	releases := make(Releases, 0, len(doc.Versions))

	for _, v := range doc.Versions {
		r := Release{Version: v.Version, Date: v.Date}
		for _, cat := range []struct {
			name  string
			items []string
		}{
			{"Added", v.Changes.Added},
			{"Changed", v.Changes.Changed},
			{"Deprecated", v.Changes.Deprecated},
			{"Removed", v.Changes.Removed},
			{"Fixed", v.Changes.Fixed},
			{"Security", v.Changes.Security},
		} {
			if len(cat.items) > 0 {
				r.Sections = append(r.Sections, Section{Name: cat.name, Items: cat.items})
			}
		}
		releases = append(releases, r)
	}

	return releases
}

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)
	datePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// validateDocument checks that a YAML changelog satisfies all schema
// constraints.
func validateDocument(doc *Document) error {
	if doc.Project == "" {
		return &ValidationError{Field: "project", Message: "required field is empty"}
	}

	unreleasedCount := 0
	seen := make(map[string]bool)

	for i, v := range doc.Versions {
		if err := validateVersionSpec(&v, i); err != nil {
			return err
		}

		normalized := NormalizeVersion(v.Version)
		if seen[normalized] {
			return &ValidationError{
				Field:   fmt.Sprintf("versions[%d].version", i),
				Message: fmt.Sprintf("duplicate version %q", v.Version),
			}
		}
		seen[normalized] = true

		if v.Version == "unreleased" {
			unreleasedCount++
		}
	}

	if unreleasedCount > 1 {
		return &ValidationError{
			Field:   "versions",
			Message: "only one 'unreleased' version is allowed",
		}
	}

	return nil
}

// validateVersionSpec checks constraints for a single version entry.
func validateVersionSpec(v *VersionSpec, index int) error {
	if v.Version == "" {
		return &ValidationError{
			Field:   fmt.Sprintf("versions[%d].version", index),
			Message: "required field is empty",
		}
	}

	if v.Version != "unreleased" {
		if !semverPattern.MatchString(v.Version) {
			return &ValidationError{
				Field:   fmt.Sprintf("versions[%d].version", index),
				Message: fmt.Sprintf("invalid semver format %q (expected: X.Y.Z)", v.Version),
			}
		}
		if v.Date == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("versions[%d].date", index),
				Message: "date is required for released versions",
			}
		}
	}

	if v.Date != "" && !datePattern.MatchString(v.Date) {
		return &ValidationError{
			Field:   fmt.Sprintf("versions[%d].date", index),
			Message: fmt.Sprintf("invalid date format %q (expected: YYYY-MM-DD)", v.Date),
		}
	}

	if v.Changes.IsEmpty() {
		return &ValidationError{
			Field:   fmt.Sprintf("versions[%d].changes", index),
			Message: "at least one change entry is required",
		}
	}

	return validateChangeEntries(&v.Changes, index)
}

// validateChangeEntries checks that all change entries are non-empty strings.
func validateChangeEntries(c *Changes, versionIndex int) error {
	categories := map[string][]string{
		"added":      c.Added,
		"changed":    c.Changed,
		"deprecated": c.Deprecated,
		"removed":    c.Removed,
		"fixed":      c.Fixed,
		"security":   c.Security,
	}

	for category, entries := range categories {
		for i, entry := range entries {
			if strings.TrimSpace(entry) == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("versions[%d].changes.%s[%d]", versionIndex, category, i),
					Message: "change entry cannot be empty",
				}
			}
		}
	}

	return nil
}

// NormalizeVersion normalizes a version string by removing the "v" prefix,
// so both "v0.6.0" and "0.6.0" are accepted as input.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(version), "v")
}
