package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayDate(t *testing.T) {
	tests := map[string]struct {
		date     string
		expected string
	}{
		"valid date":            {"2025-12-13", "December 13, 2025"},
		"single digit day pads": {"2025-12-03", "December 03, 2025"},
		"invalid month":         {"2025-13-40", "2025-13-40"},
		"impossible calendar":   {"2025-02-30", "2025-02-30"},
		"not a date at all":     {"soon", "soon"},
		"empty":                 {"", ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayDate(tt.date))
		})
	}
}

func TestRelease_Section(t *testing.T) {
	r := Release{
		Version: "1.0.0",
		Sections: []Section{
			{Name: "Added", Items: []string{"a"}},
			{Name: "Breaking"},
		},
	}

	assert.NotNil(t, r.Section("Added"))
	assert.True(t, r.HasSection("Breaking"))
	assert.Nil(t, r.Section("Removed"))
	assert.False(t, r.HasSection("added"), "section lookup is case-sensitive")
}

func TestRelease_ContentDump(t *testing.T) {
	r := Release{
		Sections: []Section{
			{Name: "Added", Items: []string{"New auth module", "Retry support"}},
			{Name: "Breaking"},
		},
	}

	dump := r.ContentDump()
	assert.Contains(t, dump, "Added")
	assert.Contains(t, dump, "New auth module")
	assert.Contains(t, dump, "Breaking")
}

func TestRelease_ItemCount(t *testing.T) {
	r := Release{
		Sections: []Section{
			{Name: "Added", Items: []string{"a", "b"}},
			{Name: "Fixed", Items: []string{"c"}},
			{Name: "Breaking"},
		},
	}

	assert.Equal(t, 3, r.ItemCount())
}
