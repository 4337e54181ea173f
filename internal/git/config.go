package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"

	eierrors "editindex.dev/editindex/internal/errors"
)

// Config options consumed by git-edit-index.
const (
	// ShowIgnoredOption selects the --ignored mode passed to git status.
	// When unset, ignored files are not listed.
	ShowIgnoredOption = "editIndex.showIgnored"

	// OnEmptyBufferOption controls what happens when the user empties the
	// whole edit buffer: "act", "nothing", or "ask" (the default).
	OnEmptyBufferOption = "editIndex.onEmptyBuffer"
)

// ConfigValue reads a git config option. An unset option is not an error; it
// yields the empty string.
func ConfigValue(ctx context.Context, option string) (string, error) {
	value, err := RunGitCommandWithContext(ctx, "config", option)
	if err != nil {
		// git config exits nonzero when the option has no value.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// EditorCommand resolves the editor to open the index buffer with, split into
// argument words. git var GIT_EDITOR already implements the full fallback
// chain (GIT_EDITOR, core.editor, VISUAL, EDITOR).
func EditorCommand(ctx context.Context) ([]string, error) {
	editor, err := RunGitCommandWithContext(ctx, "var", "GIT_EDITOR")
	if err != nil {
		// git var exits nonzero when no editor is configured anywhere in
		// the fallback chain. Anything else, like a missing git binary,
		// is a real failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, eierrors.ErrNoEditor
		}
		return nil, err
	}
	if editor == "" {
		return nil, eierrors.ErrNoEditor
	}

	words, err := shellquote.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("failed to parse editor command %q: %w", editor, err)
	}
	if len(words) == 0 {
		return nil, eierrors.ErrNoEditor
	}
	return words, nil
}
