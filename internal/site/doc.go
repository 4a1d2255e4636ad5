// Package site renders parsed changelog releases into a static HTML page.
//
// Each release becomes one HTML fragment: inferred title, inferred tag
// badges, and its non-empty sections as heading-plus-list blocks with a
// narrow inline markup subset (bold, inline code, links) converted to HTML.
// Fragments are concatenated and substituted into the single insertion
// point of an otherwise static page template.
package site
