package changelog

import (
	"fmt"
	"os"
)

// LoadFile reads a changelog document from disk and parses it according to
// its extension: .yaml/.yml files take the validated YAML path, everything
// else is parsed as the markdown dialect.
func LoadFile(path string) (Releases, error) {
	if isYAMLSource(path) {
		return LoadYAMLFile(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading changelog file: %w", err)
	}

	return Parse(string(content)), nil
}
