package site

import (
	"regexp"

	"github.com/shipnotes/shipnotes/internal/changelog"
)

// titleLimit is the display length a plain first-item title is truncated to.
const titleLimit = 50

// leadingBoldPattern matches a bold span at the very start of an item.
var leadingBoldPattern = regexp.MustCompile(`^\*\*([^*]+)\*\*`)

// Title infers a display title for a release. The first bold-led item of a
// non-empty "Added" section wins; otherwise the first "Added" item,
// truncated; otherwise "Version <version>".
func Title(r *changelog.Release) string {
	if added := r.Section("Added"); added != nil && len(added.Items) > 0 {
		for _, item := range added.Items {
			if m := leadingBoldPattern.FindStringSubmatch(item); m != nil {
				return m[1]
			}
		}
		return truncate(added.Items[0], titleLimit)
	}

	return "Version " + r.Version
}

// truncate shortens s to limit runes with an ellipsis suffix.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
