package gitrepo

import (
	"strings"

	"github.com/ariel-frischer/changelogger/internal/changelog"
)

// ParseRemoteURL parses a git remote URL into link info for the renderer.
// Supports ssh ("git@host:owner/repo.git") and https forms; ssh URLs are
// converted to https. Returns false for anything else.
func ParseRemoteURL(url string) (changelog.RemoteInfo, bool) {
	switch {
	case strings.HasPrefix(url, "git@"):
		return parseSSHURL(url)
	case strings.HasPrefix(url, "https://"):
		return parseHTTPSURL(url)
	default:
		return changelog.RemoteInfo{}, false
	}
}

func parseSSHURL(url string) (changelog.RemoteInfo, bool) {
	hostPart, pathPart, ok := strings.Cut(strings.TrimPrefix(url, "git@"), ":")
	if !ok || hostPart == "" {
		return changelog.RemoteInfo{}, false
	}

	owner, repo, ok := splitOwnerRepo(pathPart)
	if !ok {
		return changelog.RemoteInfo{}, false
	}
	return changelog.RemoteInfo{Host: "https://" + hostPart, Owner: owner, Repo: repo}, true
}

func parseHTTPSURL(url string) (changelog.RemoteInfo, bool) {
	rest := strings.TrimPrefix(url, "https://")
	hostPart, pathPart, ok := strings.Cut(rest, "/")
	if !ok || hostPart == "" {
		return changelog.RemoteInfo{}, false
	}

	owner, repo, ok := splitOwnerRepo(pathPart)
	if !ok {
		return changelog.RemoteInfo{}, false
	}
	return changelog.RemoteInfo{Host: "https://" + hostPart, Owner: owner, Repo: repo}, true
}

// splitOwnerRepo splits a remote path into owner and repository name. The
// repository is the last path element; grouped paths (GitLab subgroups)
// keep the full group path as the owner. Trailing slashes and the ".git"
// suffix are trimmed first, in that order.
func splitOwnerRepo(path string) (owner, repo string, ok bool) {
	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")

	idx := strings.LastIndexByte(path, '/')
	if idx <= 0 || idx == len(path)-1 {
		return "", "", false
	}
	return path[:idx], path[idx+1:], true
}
