package reconcile

import "editindex.dev/editindex/internal/index"

// Change pairs a path's original entry with its edited one. New is the absent
// sentinel when the user deleted the line.
type Change struct {
	Orig index.Entry
	New  index.Entry
}

// Changes returns the entries whose status differs between the original and
// the edited index, in original order. Paths that appear only in the edited
// index are ignored: the tool transitions existing entries, it never
// introduces new ones.
func Changes(orig, edited index.Index) []Change {
	var changes []Change
	for _, origEntry := range orig.Entries() {
		newEntry := edited.EntryFor(origEntry.Path)
		if newEntry.Status != origEntry.Status {
			changes = append(changes, Change{Orig: origEntry, New: newEntry})
		}
	}
	return changes
}
