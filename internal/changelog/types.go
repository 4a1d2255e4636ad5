package changelog

import (
	"strings"
	"time"
)

// Section is one named category of changes within a release (e.g. "Added",
// "Fixed"). Items keep the order they appeared in the source document.
type Section struct {
	Name  string
	Items []string
}

// Release is a single versioned changelog entry. Sections preserve
// first-seen order; a section may be present with zero items when its
// header appeared without any list items following it.
type Release struct {
	Version  string
	Date     string
	Sections []Section
}

// Releases is an ordered changelog document, newest release first
// (as authored).
type Releases []Release

// Section returns the section with the given name, or nil if the release
// has no such section.
func (r *Release) Section(name string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}

// HasSection reports whether a section header of the given name appeared
// in the release, regardless of whether it has any items.
func (r *Release) HasSection(name string) bool {
	return r.Section(name) != nil
}

// ItemCount returns the total number of items across all sections.
func (r *Release) ItemCount() int {
	count := 0
	for _, s := range r.Sections {
		count += len(s.Items)
	}
	return count
}

// ContentDump returns a flat textual dump of all section names and items,
// used by heuristics that scan release content for keywords.
func (r *Release) ContentDump() string {
	var b strings.Builder
	for _, s := range r.Sections {
		b.WriteString(s.Name)
		for _, item := range s.Items {
			b.WriteString(" ")
			b.WriteString(item)
		}
		b.WriteString(" ")
	}
	return b.String()
}

// DisplayDate formats a YYYY-MM-DD date token for human display
// (e.g. "December 13, 2025"). Tokens that fail to parse are returned
// verbatim; a malformed date never loses data.
func DisplayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}
