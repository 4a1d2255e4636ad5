// Package gitrepo discovers repository metadata used to fill in the
// generated page's repository links. Discovery is best-effort: any failure
// yields an empty result and the page simply omits those links.
package gitrepo

import (
	"strings"

	git "github.com/go-git/go-git/v5"
)

// OriginURL returns a browsable HTTPS URL for the origin remote of the
// repository containing path, or "" when there is no repository, no origin
// remote, or the remote URL cannot be normalized.
func OriginURL(path string) string {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return ""
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}

	return NormalizeRemoteURL(urls[0])
}

// NormalizeRemoteURL converts a git remote URL to a browsable HTTPS URL:
//
//	git@github.com:owner/repo.git  -> https://github.com/owner/repo
//	https://github.com/owner/repo.git -> https://github.com/owner/repo
//	ssh://git@github.com/owner/repo.git -> https://github.com/owner/repo
//
// URLs in other forms return "".
func NormalizeRemoteURL(url string) string {
	url = strings.TrimSuffix(url, ".git")

	switch {
	case strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "http://"):
		return url
	case strings.HasPrefix(url, "ssh://"):
		rest := strings.TrimPrefix(url, "ssh://")
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		return "https://" + rest
	case strings.Contains(url, "@") && strings.Contains(url, ":"):
		// scp-like syntax: git@host:owner/repo
		rest := url[strings.Index(url, "@")+1:]
		host, repoPath, ok := strings.Cut(rest, ":")
		if !ok || host == "" || repoPath == "" {
			return ""
		}
		return "https://" + host + "/" + repoPath
	default:
		return ""
	}
}
