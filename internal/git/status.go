package git

import (
	"context"

	"editindex.dev/editindex/internal/index"
)

// Status returns the raw machine-readable status of the working tree:
// NUL-terminated records, two-character status prefix per record. When the
// editIndex.showIgnored option is set, its value is passed through as the
// --ignored mode so ignored paths show up too.
func Status(ctx context.Context) (string, error) {
	args := []string{"status", "--porcelain", "-z"}

	ignored, err := ConfigValue(ctx, ShowIgnoredOption)
	if err != nil {
		return "", err
	}
	if ignored != "" {
		args = append(args, "--ignored="+ignored)
	}

	// Raw output: trimming would eat the leading space of an unstaged
	// first record.
	return RunGitCommandRawWithContext(ctx, args...)
}

// CurrentIndex builds the index describing the working tree's current set of
// pending changes.
func CurrentIndex(ctx context.Context) (index.Index, error) {
	status, err := Status(ctx)
	if err != nil {
		return index.Index{}, err
	}
	return index.FromPorcelain(status), nil
}
