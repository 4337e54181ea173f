package index

import "strings"

// Index is an ordered collection of entries, one per path, in the order git
// reported them. Order has no semantic meaning but keeps the edit buffer and
// diagnostics stable. An Index is never mutated after construction.
type Index struct {
	entries []Entry
}

// New builds an Index from the given entries.
func New(entries ...Entry) Index {
	return Index{entries: entries}
}

// FromBuffer parses the newline-separated buffer form. Lines that do not
// parse are silently dropped, so a user can remove a path from the result by
// breaking its line, not only by deleting it.
func FromBuffer(text string) Index {
	return fromRecords(strings.Split(text, "\n"))
}

// FromPorcelain parses the NUL-terminated record form produced by
// `git status --porcelain -z`.
func FromPorcelain(text string) Index {
	return fromRecords(strings.Split(text, "\x00"))
}

func fromRecords(records []string) Index {
	var entries []Entry
	for _, record := range records {
		if entry, ok := ParseLine(record); ok {
			entries = append(entries, entry)
		}
	}
	return Index{entries: entries}
}

// Len returns the number of entries.
func (ix Index) Len() int {
	return len(ix.entries)
}

// Entries returns the entries in original order. The returned slice must not
// be modified.
func (ix Index) Entries() []Entry {
	return ix.entries
}

// EntryFor returns the entry for the given path, or the absent sentinel when
// the index has no entry for it.
func (ix Index) EntryFor(path string) Entry {
	for _, entry := range ix.entries {
		if entry.Path == path {
			return entry
		}
	}
	return Absent(path)
}

// Render formats the index as buffer text: one "X path" line per entry.
// Every line ends with a newline, including the last one, as some editors
// have trouble displaying a file with an unterminated final line.
func (ix Index) Render() string {
	var b strings.Builder
	for _, entry := range ix.entries {
		b.WriteString(entry.String())
		b.WriteByte('\n')
	}
	return b.String()
}
