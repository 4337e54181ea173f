// Package testhelpers provides fixtures for tests that need a real git
// repository on disk.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a git repository created for a single test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w\n%s", err, output)
	}

	// Configure git user (required for commits)
	if err := repo.RunGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGit executes a git command in the repository directory.
func (r *GitRepo) RunGit(args ...string) error {
	_, err := r.RunGitWithOutput(args...)
	return err
}

// RunGitWithOutput executes a git command in the repository directory and
// returns its trimmed stdout.
func (r *GitRepo) RunGitWithOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile creates or overwrites a file with the given content, creating
// parent directories as needed.
func (r *GitRepo) WriteFile(name, content string) error {
	full := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return err
	}
	return os.WriteFile(full, []byte(content), 0o600)
}

// ReadFile returns the content of a file in the repository.
func (r *GitRepo) ReadFile(name string) (string, error) {
	content, err := os.ReadFile(filepath.Join(r.Dir, name))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Exists reports whether a path exists in the repository.
func (r *GitRepo) Exists(name string) bool {
	_, err := os.Lstat(filepath.Join(r.Dir, name))
	return err == nil
}

// CommitFile writes a file, stages it, and commits it.
func (r *GitRepo) CommitFile(name, content, message string) error {
	if err := r.WriteFile(name, content); err != nil {
		return err
	}
	if err := r.RunGit("add", "--", name); err != nil {
		return err
	}
	return r.RunGit("commit", "-m", message)
}

// PorcelainStatus returns the repository's `git status --porcelain` output,
// one line per entry.
func (r *GitRepo) PorcelainStatus() (string, error) {
	return r.RunGitWithOutput("status", "--porcelain")
}

// StatusOf returns the two-character porcelain status of a single path, or
// the empty string when the path is clean. The leading column is significant
// (" M" is unstaged, "M " staged), so the output is not trimmed.
func (r *GitRepo) StatusOf(name string) (string, error) {
	cmd := exec.Command("git", "status", "--porcelain", "--ignored", "--", name)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git status failed: %w", err)
	}
	line := strings.TrimRight(string(output), "\n")
	if len(line) < 2 {
		return "", nil
	}
	return line[:2], nil
}
