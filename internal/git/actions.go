package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	eierrors "editindex.dev/editindex/internal/errors"
)

// ActionOptions controls how a dispatched action runs and how its failure is
// treated.
type ActionOptions struct {
	// ShowOutput runs the command with the terminal attached and nothing
	// suppressed. Used for patch-mode actions, which are interactive.
	ShowOutput bool

	// SuppressStderr discards the command's stderr instead of passing it
	// through to the user.
	SuppressStderr bool

	// TolerateFailure treats a nonzero exit code as success. A failure to
	// launch git at all is never tolerated.
	TolerateFailure bool
}

// PerformAction runs `git <action...> -- <repo root>/<path>`. By default the
// command's stdout is suppressed and its stderr reaches the user.
func PerformAction(ctx context.Context, action []string, path string, opts ActionOptions) error {
	root, err := RepoRoot()
	if err != nil {
		return err
	}
	args := append(append([]string{}, action...), "--", filepath.Join(root, path))

	if opts.ShowOutput {
		err = RunGitCommandInteractive(args...)
	} else {
		err = runQuiet(ctx, args, opts.SuppressStderr)
	}
	if err != nil && opts.TolerateFailure {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
	}
	return err
}

// runQuiet runs a git command with stdout discarded. stderr is inherited
// unless suppressed.
func runQuiet(ctx context.Context, args []string, suppressStderr bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if defaultRunner.workingDir != "" {
		cmd.Dir = defaultRunner.workingDir
	}
	cmd.Stdout = nil
	if !suppressStderr {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return eierrors.NewGitCommandError("git", args, "", "", err)
	}
	return nil
}

// RemovePath deletes the given repository-relative path from disk, bypassing
// git entirely. Used for untracked and ignored paths, which git cannot
// restore or remove itself. Directories are removed recursively; files and
// symlinks are removed directly.
func RemovePath(path string) error {
	root, err := RepoRoot()
	if err != nil {
		return err
	}
	full := filepath.Join(root, path)

	info, err := os.Lstat(full)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	if info.IsDir() {
		return os.RemoveAll(full)
	}
	return os.Remove(full)
}
