// Package changelog parses changelog documents into release records.
//
// This package implements:
//   - CHANGELOG.md parsing for the bracketed release-header dialect
//     ("## [1.2.3] - 2025-01-02" headers with "### Category" sections)
//   - CHANGELOG.yaml parsing and validation for the structured source format
//   - Version and release querying for CLI display
//   - Colored terminal formatting of parsed releases
//   - Remote changelog fetching over HTTP
//
// Both source formats produce the same ordered []Release records, so
// consumers (the HTML renderer, the preview command) are source-agnostic.
package changelog
