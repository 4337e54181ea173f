package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"editindex.dev/editindex/internal/git"
	"editindex.dev/editindex/internal/index"
	"editindex.dev/editindex/testhelpers"
)

// newTestRepo creates a repository in a temp directory and points the default
// runner at it for the duration of the test.
func newTestRepo(t *testing.T) *testhelpers.GitRepo {
	t.Helper()
	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	git.SetWorkingDir(repo.Dir)
	t.Cleanup(func() { git.SetWorkingDir("") })
	return repo
}

func TestStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("reports NUL-terminated records", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.CommitFile("a.txt", "one\n", "init"))
		require.NoError(t, repo.WriteFile("a.txt", "two\n"))
		require.NoError(t, repo.WriteFile("b.txt", "new\n"))

		status, err := git.Status(ctx)
		require.NoError(t, err)
		require.Contains(t, status, " M a.txt\x00")
		require.Contains(t, status, "?? b.txt\x00")
	})

	t.Run("paths with spaces stay intact", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.CommitFile("init.txt", "x\n", "init"))
		require.NoError(t, repo.WriteFile("some dir/a file.txt", "new\n"))

		status, err := git.Status(ctx)
		require.NoError(t, err)
		require.Contains(t, status, "?? some dir/\x00")
	})

	t.Run("ignored files show up when configured", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.CommitFile(".gitignore", "ignored.txt\n", "init"))
		require.NoError(t, repo.WriteFile("ignored.txt", "x\n"))

		status, err := git.Status(ctx)
		require.NoError(t, err)
		require.NotContains(t, status, "!! ignored.txt")

		require.NoError(t, repo.RunGit("config", git.ShowIgnoredOption, "traditional"))

		status, err = git.Status(ctx)
		require.NoError(t, err)
		require.Contains(t, status, "!! ignored.txt\x00")
	})
}

func TestCurrentIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("maps porcelain prefixes to single letters", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.CommitFile("modified.txt", "one\n", "init"))
		require.NoError(t, repo.WriteFile("modified.txt", "two\n"))
		require.NoError(t, repo.WriteFile("staged.txt", "new\n"))
		require.NoError(t, repo.RunGit("add", "--", "staged.txt"))
		require.NoError(t, repo.WriteFile("untracked.txt", "new\n"))

		ix, err := git.CurrentIndex(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, ix.Len())
		require.Equal(t, index.StatusModified, ix.EntryFor("modified.txt").Status)
		require.Equal(t, index.StatusAdded, ix.EntryFor("staged.txt").Status)
		require.Equal(t, index.StatusUntracked, ix.EntryFor("untracked.txt").Status)
	})

	t.Run("clean tree gives empty index", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.CommitFile("a.txt", "x\n", "init"))

		ix, err := git.CurrentIndex(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, ix.Len())
	})
}
