package site

import (
	"strings"

	"github.com/shipnotes/shipnotes/internal/changelog"
)

// maxTags caps how many tag badges a release displays.
const maxTags = 4

// Tag is a short labeled badge derived from a release's content. Kind
// selects the badge style in the page template (new, feature, fix,
// breaking); Label is the visible text.
type Tag struct {
	Kind  string
	Label string
}

// topicGroups are scanned against the lowercased release content in
// priority order; the first matching group contributes the single topic tag.
var topicGroups = []struct {
	keywords []string
	label    string
}{
	{[]string{"auth"}, "Authentication"},
	{[]string{"resilience", "circuit", "retry"}, "Resilience"},
	{[]string{"cqrs", "event"}, "CQRS"},
	{[]string{"mcp"}, "MCP"},
	{[]string{"grpc", "graphql", "protocol"}, "Multi-Protocol"},
	{[]string{"shutdown"}, "Production-Ready"},
	{[]string{"security"}, "Security"},
}

// Tags infers display badges for a release from section presence and
// content keywords. Section presence alone is enough for the category
// badges, so an empty "Breaking" section still yields a breaking tag even
// though the renderer skips the empty section itself. At most 4 tags are
// returned, in fixed priority order.
func Tags(r *changelog.Release) []Tag {
	var tags []Tag

	if r.HasSection("Added") {
		tags = append(tags, Tag{Kind: "new", Label: "New"})
	}
	if r.HasSection("Changed") {
		tags = append(tags, Tag{Kind: "feature", Label: "Changed"})
	}
	if r.HasSection("Fixed") {
		tags = append(tags, Tag{Kind: "fix", Label: "Fixed"})
	}

	dump := r.ContentDump()
	if r.HasSection("Breaking") || strings.Contains(dump, "BREAKING") {
		tags = append(tags, Tag{Kind: "breaking", Label: "Breaking"})
	}

	if topic, ok := topicTag(strings.ToLower(dump)); ok {
		tags = append(tags, topic)
	}

	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}

// topicTag returns the single topic tag for the given lowercased content
// dump, if any keyword group matches.
func topicTag(content string) (Tag, bool) {
	for _, group := range topicGroups {
		for _, kw := range group.keywords {
			if strings.Contains(content, kw) {
				return Tag{Kind: "feature", Label: group.label}, true
			}
		}
	}
	return Tag{}, false
}
