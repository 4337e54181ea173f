package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	eierrors "editindex.dev/editindex/internal/errors"
)

// RepoRoot returns the root directory of the repository containing the
// runner's working directory. All dispatched commands address paths relative
// to this root, so a user can run the tool from any subdirectory.
func RepoRoot() (string, error) {
	dir := defaultRunner.workingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", eierrors.ErrNotARepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
