package changelog

import (
	"regexp"
	"strings"
)

var (
	// releaseHeaderPattern matches "## [version] - YYYY-MM-DD"; trailing
	// text after the date is ignored.
	releaseHeaderPattern = regexp.MustCompile(`^## \[([^\]]+)\] - (\d{4}-\d{2}-\d{2})`)

	// sectionHeaderPattern matches "### Name" section headers.
	sectionHeaderPattern = regexp.MustCompile(`^### (.+)$`)
)

// Parse scans a CHANGELOG.md document and returns its releases in document
// order. The parser is permissive and best-effort: lines that match no
// recognized pattern are skipped, section headers and list items with no
// release context are dropped, and list items with no section context are
// dropped. Parse never fails; structurally unexpected input yields a
// possibly-empty result.
//
// A repeated section header within one release resets that section's items
// while keeping its original position in section order.
func Parse(content string) Releases {
	var releases Releases
	var current *Release
	sectionIdx := -1

	for _, line := range strings.Split(content, "\n") {
		if m := releaseHeaderPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				releases = append(releases, *current)
			}
			current = &Release{Version: m[1], Date: m[2]}
			sectionIdx = -1
			continue
		}

		if current == nil {
			continue
		}

		if m := sectionHeaderPattern.FindStringSubmatch(line); m != nil {
			sectionIdx = openSection(current, strings.TrimSpace(m[1]))
			continue
		}

		if sectionIdx >= 0 && strings.HasPrefix(line, "- ") {
			item := strings.TrimSpace(line[2:])
			current.Sections[sectionIdx].Items = append(current.Sections[sectionIdx].Items, item)
		}
	}

	if current != nil {
		releases = append(releases, *current)
	}

	return releases
}

// openSection makes name the current section of r and returns its index.
// An existing section of the same name has its items reset; a new section
// is appended, preserving first-seen order.
func openSection(r *Release, name string) int {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			r.Sections[i].Items = nil
			return i
		}
	}
	r.Sections = append(r.Sections, Section{Name: name})
	return len(r.Sections) - 1
}
