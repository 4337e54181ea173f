// Package editor implements the edit session: it shows the current index to
// the user in their editor of choice and parses the edited buffer back into
// an index.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"editindex.dev/editindex/internal/git"
	"editindex.dev/editindex/internal/index"
)

// Edit renders the original index into a temporary file, opens the user's
// editor on it, waits for the editor to exit, and returns the index parsed
// from the edited buffer. The temporary file is removed on every exit path,
// including editor failure.
func Edit(ctx context.Context, original index.Index) (index.Index, error) {
	editorCmd, err := git.EditorCommand(ctx)
	if err != nil {
		return index.Index{}, err
	}

	tmpFile, err := os.CreateTemp("", "git-edit-index-*")
	if err != nil {
		return index.Index{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(original.Render()); err != nil {
		_ = tmpFile.Close()
		return index.Index{}, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return index.Index{}, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editorCmd, tmpFile.Name()); err != nil {
		return index.Index{}, err
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return index.Index{}, fmt.Errorf("failed to read edited file: %w", err)
	}
	return index.FromBuffer(string(content)), nil
}

// runEditor launches the editor on path with the terminal attached and blocks
// until it exits. There is no timeout: the user may keep the buffer open for
// as long as they want. A nonzero editor exit code is not treated as an
// error; the user killing the editor is indistinguishable from a clean exit,
// and the buffer on disk decides what happens next either way.
func runEditor(editorCmd []string, path string) error {
	args := append(append([]string{}, editorCmd[1:]...), path)
	cmd := exec.Command(editorCmd[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("failed to launch editor: %w", err)
	}
	return nil
}
