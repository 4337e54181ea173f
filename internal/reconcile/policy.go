// Package reconcile turns the difference between the original and the edited
// index into git commands. The transition policy is a pure function of the
// (original status, new status) pair; it never looks at file contents.
package reconcile

import (
	"editindex.dev/editindex/internal/git"
	"editindex.dev/editindex/internal/index"
)

// Step is one underlying operation required by a status transition: either a
// git action or a direct removal from disk.
type Step struct {
	// GitAction holds the git subcommand words, e.g. ["add", "-f"].
	// Empty when Remove is set.
	GitAction []string

	// Remove deletes the path from disk directly, bypassing git.
	Remove bool

	Options git.ActionOptions
}

// interactive marks patch-mode steps, which need the terminal and must not
// have their output suppressed.
var interactive = git.ActionOptions{ShowOutput: true}

// transition is the policy table: the ordered steps required to take a path
// from its original status to its new one. Unlisted pairs are already
// consistent or unsupported and get no steps, which is not an error.
func transition(orig, next index.Status) []Step {
	// Paths git does not track: the only supported transitions are staging
	// and outright removal from disk.
	if !orig.Tracked() {
		switch next {
		case index.StatusAdded:
			return []Step{{GitAction: []string{"add", "-f"}}}
		case index.StatusNone:
			return []Step{{Remove: true}}
		}
		return nil
	}

	switch next {
	case index.StatusAdded:
		return []Step{{GitAction: []string{"add", "-f"}}}
	case index.StatusPatch:
		if orig == index.StatusAdded {
			return []Step{{GitAction: []string{"reset", "--patch"}, Options: interactive}}
		}
		return []Step{{GitAction: []string{"add", "--patch"}, Options: interactive}}
	case index.StatusUntracked:
		return []Step{{GitAction: []string{"rm", "--cached"}}}
	}

	if orig == index.StatusAdded {
		switch next {
		case index.StatusModified, index.StatusDeleted:
			return []Step{{GitAction: []string{"reset"}}}
		case index.StatusNone:
			// Unstage, then discard the working-tree changes. The checkout
			// has nothing to restore when the staged file never existed in a
			// commit, so its failure is expected and ignored.
			return []Step{
				{GitAction: []string{"reset"}},
				{GitAction: []string{"checkout"}, Options: git.ActionOptions{
					SuppressStderr:  true,
					TolerateFailure: true,
				}},
			}
		}
		return nil
	}

	if next == index.StatusNone {
		return []Step{{GitAction: []string{"checkout"}}}
	}
	return nil
}

// Steps exposes the policy table for a single change.
func Steps(change Change) []Step {
	return transition(change.Orig.Status, change.New.Status)
}
