// Package gitrepo provides repository access for changelogger using the
// go-git library: repository discovery, commit listing since a tag, semver
// tag lookup and remote URL inspection. No git CLI is required and nothing
// here mutates repository state.
package gitrepo

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/ariel-frischer/changelogger/internal/changelog"
	"github.com/ariel-frischer/changelogger/internal/commit"
	"github.com/ariel-frischer/changelogger/internal/semver"
)

// shortHashLen matches the abbreviated hash width used in rendered links.
const shortHashLen = 7

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it is a no-op.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for repository operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an opened git repository.
type Repository struct {
	repo *git.Repository
}

// Open discovers and opens the repository at path, walking up the directory
// tree to find the repository root. An empty path means the current
// working directory.
func Open(path string) (*Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[gitrepo] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// Tag describes a semver release tag resolved to its commit.
type Tag struct {
	Name    string
	Hash    plumbing.Hash
	Version semver.Version
}

// LatestVersionTag returns the repository's highest semver tag, or false
// when no tag parses as a strict version.
func (r *Repository) LatestVersionTag() (Tag, bool, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return Tag{}, false, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var best Tag
	var found bool
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		v, ok := semver.FromTag(name)
		if !ok {
			return nil
		}

		hash, err := r.peelTag(ref)
		if err != nil {
			return fmt.Errorf("resolving tag %s: %w", name, err)
		}

		if !found || v.GreaterThan(best.Version) {
			best = Tag{Name: name, Hash: hash, Version: v}
			found = true
		}
		return nil
	})
	if err != nil {
		return Tag{}, false, err
	}

	if found {
		logDebug("[gitrepo] latest semver tag %s (%s)", best.Name, best.Hash)
	}
	return best, found, nil
}

// ResolveTag resolves a tag by name to its commit hash and version.
func (r *Repository) ResolveTag(name string) (Tag, error) {
	ref, err := r.repo.Reference(plumbing.NewTagReferenceName(name), true)
	if err != nil {
		return Tag{}, fmt.Errorf("finding tag %s: %w", name, err)
	}

	hash, err := r.peelTag(ref)
	if err != nil {
		return Tag{}, fmt.Errorf("resolving tag %s: %w", name, err)
	}

	v, ok := semver.FromTag(name)
	if !ok {
		return Tag{}, fmt.Errorf("tag %s does not look like a semver version", name)
	}
	return Tag{Name: name, Hash: hash, Version: v}, nil
}

// peelTag resolves a tag reference to a commit hash, following annotated
// tag objects when present.
func (r *Repository) peelTag(ref *plumbing.Reference) (plumbing.Hash, error) {
	if tagObj, err := r.repo.TagObject(ref.Hash()); err == nil {
		c, err := tagObj.Commit()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("peeling annotated tag: %w", err)
		}
		return c.Hash, nil
	}
	// Lightweight tag: the reference points at the commit directly.
	return ref.Hash(), nil
}

// CommitsSince walks history from HEAD, newest first, excluding the commit
// since points at and everything behind it. A nil since returns the full
// history, which is the first-release case.
func (r *Repository) CommitsSince(since *plumbing.Hash) ([]commit.Raw, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	headCommit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("finding HEAD commit: %w", err)
	}

	var ignore []plumbing.Hash
	if since != nil {
		ignore = append(ignore, *since)
	}

	var commits []commit.Raw
	iter := object.NewCommitPreorderIter(headCommit, nil, ignore)
	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, rawCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commits: %w", err)
	}

	logDebug("[gitrepo] %d commits since %v", len(commits), since)
	return commits, nil
}

// Remote returns link info derived from the origin remote URL, or false
// when no origin exists or its URL shape is unrecognized. Links are an
// optional nicety, never an error.
func (r *Repository) Remote() (changelog.RemoteInfo, bool) {
	remote, err := r.repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return changelog.RemoteInfo{}, false
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return changelog.RemoteInfo{}, false
	}
	return ParseRemoteURL(urls[0])
}

// rawCommit converts a go-git commit into the pipeline's raw form, splitting
// the message into subject and body.
func rawCommit(c *object.Commit) commit.Raw {
	subject, body := splitMessage(c.Message)
	hash := c.Hash.String()

	short := hash
	if len(short) > shortHashLen {
		short = short[:shortHashLen]
	}

	return commit.Raw{
		Hash:      hash,
		ShortHash: short,
		Subject:   subject,
		Body:      body,
	}
}

// splitMessage separates a commit message into its subject line and body.
func splitMessage(message string) (subject, body string) {
	subject = message
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		subject = message[:idx]
		body = strings.TrimSpace(message[idx+1:])
	}
	return strings.TrimSpace(subject), body
}
