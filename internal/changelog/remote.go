package changelog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
)

// DefaultRemoteTimeout is the default timeout for remote changelog fetches.
const DefaultRemoteTimeout = 5 * time.Second

// FetchRemote downloads a changelog document from url and parses it.
// URLs ending in .yaml or .yml take the validated YAML path; everything
// else is parsed as the markdown dialect. The context controls timeout
// and cancellation.
func FetchRemote(ctx context.Context, url string) (Releases, error) {
	body, err := fetchURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching remote changelog: %w", err)
	}

	if isYAMLSource(url) {
		releases, err := LoadYAML(strings.NewReader(string(body)))
		if err != nil {
			return nil, fmt.Errorf("parsing remote changelog: %w", err)
		}
		return releases, nil
	}

	return Parse(string(body)), nil
}

// FetchRemoteWithFallback downloads a changelog from url, falling back to
// the local file at fallbackPath when the fetch fails. The second return
// value reports whether the result came from the remote.
func FetchRemoteWithFallback(ctx context.Context, url, fallbackPath string) (Releases, bool, error) {
	releases, err := FetchRemote(ctx, url)
	if err == nil {
		return releases, true, nil
	}

	local, localErr := LoadFile(fallbackPath)
	if localErr != nil {
		return nil, false, fmt.Errorf("remote failed (%v) and local fallback failed: %w", err, localErr)
	}

	return local, false, nil
}

// isYAMLSource reports whether a path or URL names a YAML changelog.
func isYAMLSource(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// fetchURL performs a GET request and returns the response body.
func fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return body, nil
}
