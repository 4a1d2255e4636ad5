package config

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		// input: empty means discover a conventional changelog filename
		// in the working directory.
		"input": "",
		// output: empty means write the rendered page to stdout.
		"output": "",
		"site": map[string]interface{}{
			"name":        "",
			"description": "",
			"repo_url":    "",
			"docs_url":    "",
			"home_url":    "index.html",
		},
		// Document assembly limits. Older releases and items beyond these
		// caps are silently omitted from the rendered page.
		"max_releases": 15,
		"max_items":    10,
	}
}

// DefaultConfigTemplate returns a commented config template that documents
// all available options, written by `shipnotes init` style tooling and
// suitable for dropping into .shipnotes/config.yml.
func DefaultConfigTemplate() string {
	return `# shipnotes configuration
# Priority: SHIPNOTES_* env vars > .shipnotes/config.yml > ~/.config/shipnotes/config.yml

input: ""                 # Changelog source (default: discover CHANGELOG.md / CHANGELOG.yaml)
output: ""                # HTML destination (default: stdout)

site:
  name: ""                # Project name shown in the page header
  description: ""         # Footer tagline and meta description
  repo_url: ""            # Repository link (default: discovered from git origin)
  docs_url: ""            # Documentation link (omitted when empty)
  home_url: index.html    # Home link target

max_releases: 15          # Releases rendered per page
max_items: 10             # Items rendered per section
`
}
