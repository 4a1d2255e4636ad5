package site

import (
	_ "embed"
	"html/template"
)

// The page chrome (header, navigation, styles, footer) is static content
// embedded at build time; the only input-derived region is the release
// insertion point.
//
//go:embed template.html
var pageTemplateHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateHTML))
