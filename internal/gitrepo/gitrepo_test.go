package gitrepo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/changelogger/internal/semver"
)

// testRepo builds a throwaway repository and returns it with its directory.
func testRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return repo, dir
}

// addCommit writes a file and commits it with the given message.
func addCommit(t *testing.T, repo *git.Repository, dir, file, message string) plumbing.Hash {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(message), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(file)
	require.NoError(t, err)

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return hash
}

func TestOpenDiscoversFromSubdirectory(t *testing.T) {
	repo, dir := testRepo(t)
	addCommit(t, repo, dir, "a.txt", "feat: one")

	sub := filepath.Join(dir, "deep", "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	_, err := Open(sub)
	assert.NoError(t, err)
}

func TestOpenFailsOutsideRepository(t *testing.T) {
	_, err := Open(t.TempDir())
	assert.Error(t, err)
}

func TestCommitsSinceFullHistory(t *testing.T) {
	repo, dir := testRepo(t)
	addCommit(t, repo, dir, "a.txt", "feat: one")
	addCommit(t, repo, dir, "b.txt", "fix: two (#7)\n\nlonger body\nwith details")

	r, err := Open(dir)
	require.NoError(t, err)

	commits, err := r.CommitsSince(nil)
	require.NoError(t, err)
	require.Len(t, commits, 2)

	// Newest first.
	assert.Equal(t, "fix: two (#7)", commits[0].Subject)
	assert.Equal(t, "longer body\nwith details", commits[0].Body)
	assert.Equal(t, "feat: one", commits[1].Subject)
	assert.Len(t, commits[0].ShortHash, 7)
	assert.Equal(t, commits[0].Hash[:7], commits[0].ShortHash)
}

func TestCommitsSinceTag(t *testing.T) {
	repo, dir := testRepo(t)
	tagged := addCommit(t, repo, dir, "a.txt", "feat: one")
	_, err := repo.CreateTag("v1.0.0", tagged, nil)
	require.NoError(t, err)
	addCommit(t, repo, dir, "b.txt", "fix: two")

	r, err := Open(dir)
	require.NoError(t, err)

	commits, err := r.CommitsSince(&tagged)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "fix: two", commits[0].Subject)
}

func TestLatestVersionTagPicksHighest(t *testing.T) {
	repo, dir := testRepo(t)
	first := addCommit(t, repo, dir, "a.txt", "feat: one")
	second := addCommit(t, repo, dir, "b.txt", "feat: two")

	_, err := repo.CreateTag("v1.2.0", second, nil)
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.10.0", first, nil)
	require.NoError(t, err)
	_, err = repo.CreateTag("not-a-version", first, nil)
	require.NoError(t, err)

	r, err := Open(dir)
	require.NoError(t, err)

	tag, found, err := r.LatestVersionTag()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v1.10.0", tag.Name)
	assert.Equal(t, semver.MustParse("1.10.0"), tag.Version)
	assert.Equal(t, first, tag.Hash)
}

func TestLatestVersionTagNoneFound(t *testing.T) {
	repo, dir := testRepo(t)
	addCommit(t, repo, dir, "a.txt", "feat: one")

	r, err := Open(dir)
	require.NoError(t, err)

	_, found, err := r.LatestVersionTag()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResolveAnnotatedTag(t *testing.T) {
	repo, dir := testRepo(t)
	hash := addCommit(t, repo, dir, "a.txt", "feat: one")

	_, err := repo.CreateTag("v2.0.0", hash, &git.CreateTagOptions{
		Message: "release 2.0.0",
		Tagger: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	r, err := Open(dir)
	require.NoError(t, err)

	tag, err := r.ResolveTag("v2.0.0")
	require.NoError(t, err)
	assert.Equal(t, hash, tag.Hash, "annotated tags peel to their commit")
	assert.Equal(t, semver.MustParse("2.0.0"), tag.Version)
}

func TestResolveTagMissing(t *testing.T) {
	repo, dir := testRepo(t)
	addCommit(t, repo, dir, "a.txt", "feat: one")

	r, err := Open(dir)
	require.NoError(t, err)

	_, err = r.ResolveTag("v9.9.9")
	assert.Error(t, err)
}

func TestRemoteFromOrigin(t *testing.T) {
	repo, dir := testRepo(t)
	addCommit(t, repo, dir, "a.txt", "feat: one")

	_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:user/repo.git"},
	})
	require.NoError(t, err)

	r, err := Open(dir)
	require.NoError(t, err)

	remote, ok := r.Remote()
	require.True(t, ok)
	assert.Equal(t, "https://github.com", remote.Host)
	assert.Equal(t, "user", remote.Owner)
	assert.Equal(t, "repo", remote.Repo)
}

func TestRemoteMissing(t *testing.T) {
	repo, dir := testRepo(t)
	addCommit(t, repo, dir, "a.txt", "feat: one")

	r, err := Open(dir)
	require.NoError(t, err)

	_, ok := r.Remote()
	assert.False(t, ok)
}
