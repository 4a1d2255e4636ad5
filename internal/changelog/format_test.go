package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRelease_Plain(t *testing.T) {
	r := Release{
		Version: "0.2.0",
		Date:    "2024-02-01",
		Sections: []Section{
			{Name: "Added", Items: []string{"New thing"}},
			{Name: "Breaking"},
			{Name: "Fixed", Items: []string{"Old bug"}},
		},
	}

	var b strings.Builder
	err := FormatRelease(&r, &b, FormatOptions{Plain: true, MaxWidth: 80}, 80)
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, "## v0.2.0 (February 01, 2024)")
	assert.Contains(t, out, "### Added")
	assert.Contains(t, out, "  - New thing")
	assert.Contains(t, out, "### Fixed")
	assert.Contains(t, out, "  - Old bug")
	assert.NotContains(t, out, "Breaking", "empty sections are skipped")
}

func TestFormatTerminal_Plain(t *testing.T) {
	rs := Releases{
		{Version: "0.2.0", Date: "2024-02-01", Sections: []Section{{Name: "Added", Items: []string{"b"}}}},
		{Version: "0.1.0", Date: "2024-01-01", Sections: []Section{{Name: "Added", Items: []string{"a"}}}},
	}

	var b strings.Builder
	err := FormatTerminal(rs, &b, FormatOptions{Plain: true, MaxWidth: 80})
	require.NoError(t, err)

	out := b.String()
	first := strings.Index(out, "v0.2.0")
	second := strings.Index(out, "v0.1.0")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first, "releases keep document order")
}

func TestFormatTerminal_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, FormatTerminal(nil, &b, FormatOptions{Plain: true}))
	assert.Empty(t, b.String())
}

func TestWrapText(t *testing.T) {
	tests := map[string]struct {
		text     string
		maxWidth int
		expected string
	}{
		"short text unchanged": {
			text:     "short",
			maxWidth: 80,
			expected: "short",
		},
		"wraps at word boundary": {
			text:     "one two three four",
			maxWidth: 10,
			expected: "one two\n    three four",
		},
		"zero width unchanged": {
			text:     "anything at all",
			maxWidth: 0,
			expected: "anything at all",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapText(tt.text, tt.maxWidth, "    "))
		})
	}
}
