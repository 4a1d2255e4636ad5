package site

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipnotes/shipnotes/internal/changelog"
)

func release(sections ...changelog.Section) changelog.Release {
	return changelog.Release{Version: "1.0.0", Date: "2024-01-15", Sections: sections}
}

func TestTags_SectionPresence(t *testing.T) {
	tests := map[string]struct {
		release  changelog.Release
		expected []Tag
	}{
		"added only": {
			release:  release(changelog.Section{Name: "Added", Items: []string{"plain item"}}),
			expected: []Tag{{Kind: "new", Label: "New"}},
		},
		"changed only": {
			release:  release(changelog.Section{Name: "Changed", Items: []string{"plain item"}}),
			expected: []Tag{{Kind: "feature", Label: "Changed"}},
		},
		"fixed only": {
			release:  release(changelog.Section{Name: "Fixed", Items: []string{"plain item"}}),
			expected: []Tag{{Kind: "fix", Label: "Fixed"}},
		},
		"no sections no tags": {
			release:  release(),
			expected: nil,
		},
		"category order is fixed": {
			release: release(
				changelog.Section{Name: "Fixed", Items: []string{"plain fix"}},
				changelog.Section{Name: "Added", Items: []string{"plain item"}},
			),
			expected: []Tag{
				{Kind: "new", Label: "New"},
				{Kind: "fix", Label: "Fixed"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tags(&tt.release))
		})
	}
}

// Tag inference depends on section presence, not content: an empty
// Breaking section still yields a breaking tag even though the renderer
// skips the section block itself.
func TestTags_BreakingSectionPresence(t *testing.T) {
	r := release(changelog.Section{Name: "Breaking"})

	tags := Tags(&r)
	assert.Equal(t, []Tag{{Kind: "breaking", Label: "Breaking"}}, tags)

	html := RenderRelease(&r, 10)
	assert.NotContains(t, html, "section-title", "empty sections render no block")
	assert.Contains(t, html, `class="tag breaking"`)
}

func TestTags_BreakingKeywordInContent(t *testing.T) {
	r := release(changelog.Section{Name: "Changed", Items: []string{"BREAKING: renamed the config keys"}})

	tags := Tags(&r)
	assert.Contains(t, tags, Tag{Kind: "breaking", Label: "Breaking"})
}

func TestTags_LowercaseBreakingDoesNotCount(t *testing.T) {
	r := release(changelog.Section{Name: "Changed", Items: []string{"breaking distribution into packages"}})

	assert.NotContains(t, Tags(&r), Tag{Kind: "breaking", Label: "Breaking"})
}

func TestTags_TopicPriority(t *testing.T) {
	tests := map[string]struct {
		items    []string
		expected string
	}{
		"auth wins":                     {[]string{"new auth flow"}, "Authentication"},
		"auth beats retry":              {[]string{"retry auth flow"}, "Authentication"},
		"retry maps to resilience":      {[]string{"retry budget support"}, "Resilience"},
		"circuit maps to resilience":    {[]string{"circuit breaker"}, "Resilience"},
		"event maps to cqrs":            {[]string{"event sourcing"}, "CQRS"},
		"mcp":                           {[]string{"mcp server"}, "MCP"},
		"grpc maps to multi-protocol":   {[]string{"grpc transport"}, "Multi-Protocol"},
		"shutdown":                      {[]string{"graceful shutdown"}, "Production-Ready"},
		"keyword matching ignores case": {[]string{"AUTH everywhere"}, "Authentication"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := release(changelog.Section{Name: "Changed", Items: tt.items})
			assert.Contains(t, Tags(&r), Tag{Kind: "feature", Label: tt.expected})
		})
	}
}

func TestTags_SectionNameFeedsTopicScan(t *testing.T) {
	// The Security section name itself matches the "security" keyword.
	r := release(changelog.Section{Name: "Security", Items: []string{"patched a thing"}})

	assert.Contains(t, Tags(&r), Tag{Kind: "feature", Label: "Security"})
}

func TestTags_OnlyOneTopicTag(t *testing.T) {
	r := release(changelog.Section{Name: "Changed", Items: []string{"grpc shutdown security"}})

	topicCount := 0
	for _, tag := range Tags(&r) {
		switch tag.Label {
		case "Authentication", "Resilience", "CQRS", "MCP", "Multi-Protocol", "Production-Ready", "Security":
			topicCount++
		}
	}
	assert.Equal(t, 1, topicCount)
}

func TestTags_CappedAtFour(t *testing.T) {
	r := release(
		changelog.Section{Name: "Added", Items: []string{"auth support"}},
		changelog.Section{Name: "Changed", Items: []string{"plain change"}},
		changelog.Section{Name: "Fixed", Items: []string{"plain fix"}},
		changelog.Section{Name: "Breaking", Items: []string{"removed old API"}},
	)

	tags := Tags(&r)
	assert.Len(t, tags, 4)
	assert.Equal(t, []Tag{
		{Kind: "new", Label: "New"},
		{Kind: "feature", Label: "Changed"},
		{Kind: "fix", Label: "Fixed"},
		{Kind: "breaking", Label: "Breaking"},
	}, tags, "topic tag falls off the end when four category tags fire")
}

func TestTags_CountAlwaysAtMostFour(t *testing.T) {
	samples := []changelog.Release{
		release(),
		release(changelog.Section{Name: "Added", Items: []string{"auth"}}),
		release(
			changelog.Section{Name: "Added", Items: []string{"auth grpc event"}},
			changelog.Section{Name: "Changed", Items: []string{"BREAKING change"}},
			changelog.Section{Name: "Fixed", Items: []string{"fix"}},
		),
	}

	for _, r := range samples {
		tags := Tags(&r)
		assert.GreaterOrEqual(t, len(tags), 0)
		assert.LessOrEqual(t, len(tags), 4)
	}
}
