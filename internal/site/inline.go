package site

import (
	"regexp"
	"strings"
)

var (
	boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	codePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// convertInline converts the recognized inline markup subset of an item to
// HTML: **bold** spans, `code` spans, and [label](target) links. Text
// outside recognized markup passes through unchanged; the conversion is
// applied once, so an item containing **x** yields exactly one strong
// element.
func convertInline(item string) string {
	item = boldPattern.ReplaceAllString(item, "<strong>$1</strong>")
	item = codePattern.ReplaceAllString(item, `<code class="code-inline">$1</code>`)
	item = linkPattern.ReplaceAllString(item, `<a href="$2">$1</a>`)
	return item
}

// escapeHTML escapes &, < and > in that substitution order, so inserted
// entities are not double-escaped. Applied to titles and section names;
// item bodies rely on inline conversion alone.
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
