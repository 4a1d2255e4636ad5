package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shipnotes/shipnotes/internal/changelog"
)

// Defaults for document assembly limits.
const (
	DefaultMaxReleases = 15
	DefaultMaxItems    = 10
)

// Params configures the rendered page. Zero-valued limits fall back to the
// defaults; empty URL fields omit the corresponding links from the chrome.
type Params struct {
	SiteName    string
	Description string
	RepoURL     string
	DocsURL     string
	HomeURL     string
	MaxReleases int
	MaxItems    int
}

// pageData is the template payload. Releases carries the concatenated
// release fragments, already escaped and converted, so the template must
// not escape it again.
type pageData struct {
	SiteName    string
	Description string
	RepoURL     string
	DocsURL     string
	HomeURL     string
	Releases    template.HTML
}

// Render assembles the full changelog page: at most the first MaxReleases
// releases are rendered to fragments, concatenated, and substituted into
// the page template's single insertion point. The transformation is pure;
// the same input always produces the same document.
func Render(releases changelog.Releases, p Params) (string, error) {
	maxReleases := p.MaxReleases
	if maxReleases <= 0 {
		maxReleases = DefaultMaxReleases
	}
	maxItems := p.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	var fragments strings.Builder
	for i := range releases.FirstN(maxReleases) {
		fragments.WriteString(RenderRelease(&releases[i], maxItems))
	}

	data := pageData{
		SiteName:    p.SiteName,
		Description: p.Description,
		RepoURL:     p.RepoURL,
		DocsURL:     p.DocsURL,
		HomeURL:     p.HomeURL,
		Releases:    template.HTML(fragments.String()),
	}
	if data.SiteName == "" {
		data.SiteName = "Changelog"
	}
	if data.HomeURL == "" {
		data.HomeURL = "index.html"
	}

	var out strings.Builder
	if err := pageTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return out.String(), nil
}

// RenderRelease renders a single release to its HTML fragment: formatted
// date, version badge, inferred title and tags, then each non-empty
// section as a heading plus a list of up to maxItems converted items.
func RenderRelease(r *changelog.Release, maxItems int) string {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	return fmt.Sprintf(releaseFragment,
		r.Version,
		changelog.DisplayDate(r.Date),
		r.Version,
		escapeHTML(Title(r)),
		renderTags(Tags(r)),
		renderSections(r.Sections, maxItems),
	)
}

const releaseFragment = `
                <!-- v%s -->
                <div class="release">
                    <div class="release-meta">
                        <div class="release-date">%s</div>
                        <div class="release-version">%s</div>
                    </div>
                    <div class="release-content">
                        <h2 class="release-title">%s</h2>
                        <div class="release-tags">
                            %s
                        </div>
%s
                    </div>
                </div>
`

// renderTags renders the tag badges, one span per tag.
func renderTags(tags []Tag) string {
	spans := make([]string, len(tags))
	for i, t := range tags {
		spans[i] = fmt.Sprintf(`<span class="tag %s">%s</span>`, t.Kind, t.Label)
	}
	return strings.Join(spans, "\n                            ")
}

// renderSections renders each non-empty section as a heading and an item
// list. Sections with zero items are skipped entirely; items beyond
// maxItems are dropped.
func renderSections(sections []changelog.Section, maxItems int) string {
	var b strings.Builder
	for _, s := range sections {
		if len(s.Items) == 0 {
			continue
		}

		items := s.Items
		if len(items) > maxItems {
			items = items[:maxItems]
		}

		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = fmt.Sprintf("<li>%s</li>", convertInline(item))
		}

		b.WriteString(fmt.Sprintf(sectionBlock,
			escapeHTML(s.Name),
			strings.Join(lines, "\n                                "),
		))
	}
	return b.String()
}

const sectionBlock = `
                        <div class="section">
                            <h3 class="section-title">%s</h3>
                            <ul>
                                %s
                            </ul>
                        </div>
`
