package changelog

import (
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version   string
	Available []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.Available, ", "))
}

// Get retrieves a specific release by version. Accepts both "v0.6.0" and
// "0.6.0" forms. Returns VersionNotFoundError if the version doesn't exist.
func (rs Releases) Get(version string) (*Release, error) {
	normalized := NormalizeVersion(version)

	for i := range rs {
		if NormalizeVersion(rs[i].Version) == normalized {
			return &rs[i], nil
		}
	}

	return nil, &VersionNotFoundError{
		Version:   version,
		Available: rs.Versions(),
	}
}

// Versions returns all version identifiers in document order (newest first).
func (rs Releases) Versions() []string {
	versions := make([]string, len(rs))
	for i, r := range rs {
		versions[i] = r.Version
	}
	return versions
}

// Latest returns the most recent release, or nil for an empty document.
func (rs Releases) Latest() *Release {
	if len(rs) == 0 {
		return nil
	}
	return &rs[0]
}

// FirstN returns up to the n most recent releases.
func (rs Releases) FirstN(n int) Releases {
	if n <= 0 {
		return Releases{}
	}
	if len(rs) <= n {
		return rs
	}
	return rs[:n]
}

// ItemCount returns the total number of items across all releases.
func (rs Releases) ItemCount() int {
	count := 0
	for i := range rs {
		count += rs[i].ItemCount()
	}
	return count
}
