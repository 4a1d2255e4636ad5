package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WellFormedDocuments(t *testing.T) {
	tests := map[string]struct {
		content  string
		expected Releases
	}{
		"single release with one section": {
			content: `# Changelog

## [1.0.0] - 2024-01-15

### Added
- Initial release
`,
			expected: Releases{
				{
					Version: "1.0.0",
					Date:    "2024-01-15",
					Sections: []Section{
						{Name: "Added", Items: []string{"Initial release"}},
					},
				},
			},
		},
		"multiple releases in document order": {
			content: `## [0.2.0] - 2024-02-20

### Added
- Feature B

## [0.1.0] - 2024-01-15

### Added
- Feature A

### Fixed
- Crash on empty input
`,
			expected: Releases{
				{
					Version: "0.2.0",
					Date:    "2024-02-20",
					Sections: []Section{
						{Name: "Added", Items: []string{"Feature B"}},
					},
				},
				{
					Version: "0.1.0",
					Date:    "2024-01-15",
					Sections: []Section{
						{Name: "Added", Items: []string{"Feature A"}},
						{Name: "Fixed", Items: []string{"Crash on empty input"}},
					},
				},
			},
		},
		"section order is first-seen order": {
			content: `## [1.0.0] - 2024-01-15

### Fixed
- A fix

### Added
- A feature
`,
			expected: Releases{
				{
					Version: "1.0.0",
					Date:    "2024-01-15",
					Sections: []Section{
						{Name: "Fixed", Items: []string{"A fix"}},
						{Name: "Added", Items: []string{"A feature"}},
					},
				},
			},
		},
		"item whitespace is trimmed": {
			content: "## [1.0.0] - 2024-01-15\n\n### Added\n-    padded item   \n",
			expected: Releases{
				{
					Version: "1.0.0",
					Date:    "2024-01-15",
					Sections: []Section{
						{Name: "Added", Items: []string{"padded item"}},
					},
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.content))
		})
	}
}

func TestParse_ReleaseCountMatchesHeaderCount(t *testing.T) {
	var b strings.Builder
	b.WriteString("# Changelog\n")
	for i := 0; i < 20; i++ {
		b.WriteString("## [0.0.1] - 2024-01-01\n### Added\n- item\n")
	}

	releases := Parse(b.String())
	assert.Len(t, releases, 20)
}

func TestParse_TrailingTextAfterDateIsDiscarded(t *testing.T) {
	releases := Parse("## [1.0.0] - 2024-01-15 — The Big One\n\n### Added\n- thing\n")

	require.Len(t, releases, 1)
	assert.Equal(t, "1.0.0", releases[0].Version)
	assert.Equal(t, "2024-01-15", releases[0].Date)
}

func TestParse_ReleaseWithNoSections(t *testing.T) {
	releases := Parse("## [1.0.0] - 2024-01-15\n\nSome prose here.\n")

	require.Len(t, releases, 1)
	assert.Empty(t, releases[0].Sections)
}

func TestParse_EmptySectionIsRetained(t *testing.T) {
	releases := Parse(`## [1.0.0] - 2024-01-15

### Breaking

### Fixed
- a fix
`)

	require.Len(t, releases, 1)
	require.True(t, releases[0].HasSection("Breaking"))
	assert.Empty(t, releases[0].Section("Breaking").Items)
	assert.Equal(t, []string{"a fix"}, releases[0].Section("Fixed").Items)
}

func TestParse_ItemsBeforeAnySectionAreDropped(t *testing.T) {
	releases := Parse(`## [1.0.0] - 2024-01-15

- orphan item

### Added
- kept item
`)

	require.Len(t, releases, 1)
	require.Len(t, releases[0].Sections, 1)
	assert.Equal(t, []string{"kept item"}, releases[0].Section("Added").Items)

	for _, s := range releases[0].Sections {
		assert.NotContains(t, s.Items, "orphan item")
	}
}

func TestParse_ContentBeforeAnyReleaseIsDropped(t *testing.T) {
	releases := Parse(`### Added
- stray item

## [1.0.0] - 2024-01-15

### Added
- real item
`)

	require.Len(t, releases, 1)
	assert.Equal(t, []string{"real item"}, releases[0].Section("Added").Items)
}

func TestParse_RepeatedSectionHeaderResetsItems(t *testing.T) {
	releases := Parse(`## [1.0.0] - 2024-01-15

### Added
- first batch

### Fixed
- a fix

### Added
- second batch
`)

	require.Len(t, releases, 1)
	// Last occurrence wins for content; position stays first-seen.
	require.Len(t, releases[0].Sections, 2)
	assert.Equal(t, "Added", releases[0].Sections[0].Name)
	assert.Equal(t, []string{"second batch"}, releases[0].Sections[0].Items)
	assert.Equal(t, []string{"a fix"}, releases[0].Sections[1].Items)
}

func TestParse_FinalReleaseIsFinalizedAtEOF(t *testing.T) {
	releases := Parse("## [1.0.0] - 2024-01-15\n### Added\n- no trailing newline section")

	require.Len(t, releases, 1)
	assert.Equal(t, []string{"no trailing newline section"}, releases[0].Section("Added").Items)
}

func TestParse_UnrecognizedLinesAreIgnored(t *testing.T) {
	releases := Parse(`# Changelog

Intro prose with a - dash in the middle.

## [1.0.0] - 2024-01-15

#### Level four header
### Added
- item
> blockquote
`)

	require.Len(t, releases, 1)
	assert.Equal(t, []string{"item"}, releases[0].Section("Added").Items)
}

func TestParse_MalformedHeadersDoNotStartReleases(t *testing.T) {
	tests := map[string]string{
		"missing brackets":   "## 1.0.0 - 2024-01-15\n### Added\n- item\n",
		"missing date":       "## [1.0.0]\n### Added\n- item\n",
		"date not ISO":       "## [1.0.0] - 15/01/2024\n### Added\n- item\n",
		"level three header": "### [1.0.0] - 2024-01-15\n",
		"indented header":    "  ## [1.0.0] - 2024-01-15\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, Parse(content))
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
}
