package reconcile

import (
	"context"
	"errors"
	"os/exec"

	"editindex.dev/editindex/internal/git"
	"editindex.dev/editindex/internal/index"
)

// Dispatcher runs the underlying operations the policy table emits. The real
// implementation shells out to git; tests substitute a recording fake.
type Dispatcher interface {
	PerformAction(ctx context.Context, action []string, path string, opts git.ActionOptions) error
	RemovePath(path string) error
}

// gitDispatcher dispatches to the git package.
type gitDispatcher struct{}

func (gitDispatcher) PerformAction(ctx context.Context, action []string, path string, opts git.ActionOptions) error {
	return git.PerformAction(ctx, action, path, opts)
}

func (gitDispatcher) RemovePath(path string) error {
	return git.RemovePath(path)
}

// Apply makes the working tree match the edited index by running the policy
// table's steps for every changed entry, sequentially and in original order.
func Apply(ctx context.Context, orig, edited index.Index) error {
	return ApplyWith(ctx, gitDispatcher{}, orig, edited)
}

// ApplyWith is Apply with an explicit dispatcher.
//
// A command that exits nonzero fails only its own entry: the remaining steps
// for that entry are skipped and the loop moves on, with the failure joined
// into the returned error. A command that cannot run at all (git missing,
// not a repository) aborts the whole run. Completed actions are never rolled
// back.
func ApplyWith(ctx context.Context, d Dispatcher, orig, edited index.Index) error {
	var errs []error
	for _, change := range Changes(orig, edited) {
		if err := applyChange(ctx, d, change); err != nil {
			errs = append(errs, err)
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				break
			}
		}
	}
	return errors.Join(errs...)
}

func applyChange(ctx context.Context, d Dispatcher, change Change) error {
	for _, step := range Steps(change) {
		var err error
		if step.Remove {
			err = d.RemovePath(change.Orig.Path)
		} else {
			err = d.PerformAction(ctx, step.GitAction, change.Orig.Path, step.Options)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
