package index_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"editindex.dev/editindex/internal/index"
)

func TestParseLine(t *testing.T) {
	t.Run("returns nothing for empty line", func(t *testing.T) {
		_, ok := index.ParseLine("")
		require.False(t, ok)
	})

	t.Run("returns nothing for unknown status", func(t *testing.T) {
		_, ok := index.ParseLine("# file.txt")
		require.False(t, ok)
	})

	t.Run("staged modification in porcelain form collapses to A", func(t *testing.T) {
		entry, ok := index.ParseLine("M  file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusAdded, entry.Status)
		require.Equal(t, "file.txt", entry.Path)
	})

	t.Run("unstaged modification in porcelain form", func(t *testing.T) {
		entry, ok := index.ParseLine(" M file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusModified, entry.Status)
		require.Equal(t, "file.txt", entry.Path)
	})

	t.Run("unstaged deletion in porcelain form", func(t *testing.T) {
		entry, ok := index.ParseLine(" D file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusDeleted, entry.Status)
		require.Equal(t, "file.txt", entry.Path)
	})

	t.Run("dual porcelain code collapses to A", func(t *testing.T) {
		entry, ok := index.ParseLine("MM file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusAdded, entry.Status)
	})

	t.Run("untracked porcelain pair collapses to question mark", func(t *testing.T) {
		entry, ok := index.ParseLine("?? file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusUntracked, entry.Status)
		require.Equal(t, "file.txt", entry.Path)
	})

	t.Run("ignored porcelain pair collapses to exclamation mark", func(t *testing.T) {
		entry, ok := index.ParseLine("!! file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusIgnored, entry.Status)
	})

	t.Run("simplified buffer form", func(t *testing.T) {
		for _, status := range []index.Status{
			index.StatusModified,
			index.StatusAdded,
			index.StatusDeleted,
			index.StatusUntracked,
			index.StatusIgnored,
			index.StatusPatch,
		} {
			entry, ok := index.ParseLine(status.String() + " file.txt")
			require.True(t, ok, "status %s", status)
			require.Equal(t, status, entry.Status)
			require.Equal(t, "file.txt", entry.Path)
		}
	})

	t.Run("status letter is case insensitive", func(t *testing.T) {
		entry, ok := index.ParseLine("a file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusAdded, entry.Status)
		require.Equal(t, "file.txt", entry.Path)
	})

	t.Run("paths may contain spaces", func(t *testing.T) {
		entry, ok := index.ParseLine("?? some dir/a file.txt")
		require.True(t, ok)
		require.Equal(t, index.StatusUntracked, entry.Status)
		require.Equal(t, "some dir/a file.txt", entry.Path)
	})

	t.Run("unrecognized letters outside the alphabet", func(t *testing.T) {
		for _, line := range []string{"X file.txt", "z file.txt", "1 file.txt", "- file.txt"} {
			_, ok := index.ParseLine(line)
			require.False(t, ok, "line %q", line)
		}
	})
}

func TestEntryString(t *testing.T) {
	t.Run("present entry", func(t *testing.T) {
		entry := index.Entry{Status: index.StatusModified, Path: "file.txt"}
		require.Equal(t, "M file.txt", entry.String())
	})

	t.Run("absent entry", func(t *testing.T) {
		require.Equal(t, "- file.txt", index.Absent("file.txt").String())
	})
}

func TestStatusTracked(t *testing.T) {
	for _, status := range []index.Status{
		index.StatusModified,
		index.StatusAdded,
		index.StatusDeleted,
		index.StatusPatch,
	} {
		require.True(t, status.Tracked(), "status %s", status)
	}
	for _, status := range []index.Status{
		index.StatusUntracked,
		index.StatusIgnored,
		index.StatusNone,
	} {
		require.False(t, status.Tracked(), "status %s", status)
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	// Every present entry survives a format/parse round trip unchanged.
	for _, status := range []index.Status{
		index.StatusModified,
		index.StatusAdded,
		index.StatusDeleted,
		index.StatusUntracked,
		index.StatusIgnored,
		index.StatusPatch,
	} {
		entry := index.Entry{Status: status, Path: "path/to/file.txt"}
		parsed, ok := index.ParseLine(entry.String())
		require.True(t, ok, "status %s", status)
		require.Equal(t, entry, parsed)
	}
}
