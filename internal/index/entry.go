// Package index models the editable view of a repository's change status: one
// Entry per path, collected into an ordered Index. It converts between the
// porcelain status output produced by git and the simplified one-letter-per-line
// buffer shown to the user.
package index

// Status is the single-letter change status of a path.
// The zero value StatusNone is the "no entry" sentinel used when a path has
// been deleted from the edited buffer.
type Status byte

// Recognized statuses
const (
	StatusNone      Status = 0
	StatusModified  Status = 'M'
	StatusAdded     Status = 'A'
	StatusDeleted   Status = 'D'
	StatusUntracked Status = '?'
	StatusIgnored   Status = '!'
	StatusPatch     Status = 'P'
)

// Valid reports whether s is one of the recognized present statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusModified, StatusAdded, StatusDeleted, StatusUntracked, StatusIgnored, StatusPatch:
		return true
	}
	return false
}

// Tracked reports whether s denotes a path git knows about.
func (s Status) Tracked() bool {
	return s.Valid() && s != StatusUntracked && s != StatusIgnored
}

func (s Status) String() string {
	if s == StatusNone {
		return "-"
	}
	return string(byte(s))
}

// Entry represents one path's change status. An Entry with StatusNone is the
// absent sentinel: the path exists in the original index but not in the
// edited one.
type Entry struct {
	Status Status
	Path   string
}

// Absent returns the absent sentinel entry for path.
func Absent(path string) Entry {
	return Entry{Status: StatusNone, Path: path}
}

// Present reports whether the entry carries a real status.
func (e Entry) Present() bool {
	return e.Status != StatusNone
}

// String renders the entry as one buffer line, without the trailing newline.
// Absent entries render as "- path"; that form is for diagnostics only and is
// never written into an edit buffer.
func (e Entry) String() string {
	return e.Status.String() + " " + e.Path
}

// statusFromLetter maps a single status letter (either case) to its Status,
// or StatusNone if the letter is not recognized.
func statusFromLetter(c byte) Status {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	s := Status(c)
	if !s.Valid() {
		return StatusNone
	}
	return s
}

// statusFromPorcelain collapses a two-character porcelain prefix to a single
// letter. The mapping: an untracked pair gives '?', an ignored pair '!'.
// A space in the index column means the change only lives in the working
// tree, so the worktree letter is kept as-is. Any letter in the index column
// means the path has staged content and collapses to 'A', including dual
// codes such as "MM".
func statusFromPorcelain(x, y byte) Status {
	switch x {
	case '?':
		return StatusUntracked
	case '!':
		return StatusIgnored
	case ' ':
		return statusFromLetter(y)
	}
	if statusFromLetter(x) == StatusNone {
		return StatusNone
	}
	return StatusAdded
}

// ParseLine parses a single status line in either the two-character porcelain
// form ("XY path") or the simplified buffer form ("X path"). It returns
// ok=false for an empty line or a line whose status is not recognized.
func ParseLine(line string) (Entry, bool) {
	// Porcelain form: two status characters, one space, then the path. The
	// porcelain form wins when both readings are possible, matching the
	// record layout of `git status --porcelain -z`.
	if len(line) >= 4 && line[2] == ' ' && isStatusChar(line[0]) && isStatusChar(line[1]) {
		if s := statusFromPorcelain(line[0], line[1]); s != StatusNone {
			return Entry{Status: s, Path: line[3:]}, true
		}
		return Entry{}, false
	}

	// Simplified form: one status letter, one space, then the path.
	if len(line) >= 3 && line[1] == ' ' {
		if s := statusFromLetter(line[0]); s != StatusNone {
			return Entry{Status: s, Path: line[2:]}, true
		}
	}
	return Entry{}, false
}

// isStatusChar reports whether c can appear in a porcelain status column.
func isStatusChar(c byte) bool {
	return c == ' ' || statusFromLetter(c) != StatusNone
}
