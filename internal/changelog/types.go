package changelog

import (
	"fmt"
	"time"

	"github.com/ariel-frischer/changelogger/internal/classify"
	"github.com/ariel-frischer/changelogger/internal/semver"
)

// RemoteInfo identifies the hosting location of a repository, used to build
// commit, issue, compare and release-tag links. Host carries the scheme
// (e.g. "https://github.com").
type RemoteInfo struct {
	Host  string
	Owner string
	Repo  string
}

// baseURL returns "{host}/{owner}/{repo}".
func (r RemoteInfo) baseURL() string {
	return fmt.Sprintf("%s/%s/%s", r.Host, r.Owner, r.Repo)
}

// CommitURL returns the link for a commit hash.
func (r RemoteInfo) CommitURL(hash string) string {
	return fmt.Sprintf("%s/commit/%s", r.baseURL(), hash)
}

// IssueURL returns the link for an issue number.
func (r RemoteInfo) IssueURL(n int) string {
	return fmt.Sprintf("%s/issues/%d", r.baseURL(), n)
}

// CompareURL returns the link comparing two tags.
func (r RemoteInfo) CompareURL(prevTag, nextTag string) string {
	return fmt.Sprintf("%s/compare/%s...%s", r.baseURL(), prevTag, nextTag)
}

// ReleaseTagURL returns the link to a release tag page.
func (r RemoteInfo) ReleaseTagURL(tag string) string {
	return fmt.Sprintf("%s/releases/tag/%s", r.baseURL(), tag)
}

// Section is the input to rendering one release section.
type Section struct {
	// Version is the release being documented.
	Version semver.Version

	// Previous is the version the release follows; 0.0.0 when this is the
	// first release ever (the compare link is then omitted).
	Previous semver.Version

	// Date is the release date, rendered as YYYY-MM-DD.
	Date time.Time

	// Commits are the classified commits of the run, in the order the
	// repository supplied them. Ignored commits are dropped at render time.
	Commits []classify.Classified

	// Remote enables link generation when present.
	Remote *RemoteInfo

	// Forced marks an explicit version override. Only a forced section is
	// rendered when no renderable commits remain.
	Forced bool
}
