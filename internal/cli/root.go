// Package cli wires the status -> edit -> reconcile pipeline into a
// subcommand-less cobra command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"editindex.dev/editindex/internal/editor"
	eierrors "editindex.dev/editindex/internal/errors"
	"editindex.dev/editindex/internal/git"
	"editindex.dev/editindex/internal/output"
	"editindex.dev/editindex/internal/reconcile"
)

// Execute runs the root command with the given arguments and returns the
// process exit code. Fatal errors are reported through the logger.
func Execute(version, commit, date string, args []string) int {
	log := output.NewLogger()
	defer func() { _ = log.Close() }()

	cmd := NewRootCmd(version, commit, date)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-edit-index",
		Short: "Edit the git index in a text editor",
		Long: `git-edit-index opens the current change status of the working tree in your
editor. Change the status letters or delete lines, save, and quit; the
corresponding git commands are run for you. A faster alternative to
git add -i or git gui.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := output.NewLogger()
			defer func() { _ = log.Close() }()
			return run(cmd.Context(), log)
		},
	}
	cmd.SetVersionTemplate("git-edit-index {{.Version}}\n")
	cmd.Flags().BoolP("version", "V", false, "version for git-edit-index")

	return cmd
}

// run executes the whole pipeline: acquire the current index, let the user
// edit it, reconcile the difference.
func run(ctx context.Context, log *output.Logger) error {
	orig, err := git.CurrentIndex(ctx)
	if err != nil {
		return err
	}
	if orig.Len() == 0 {
		// Clean tree: nothing to show, do not bother opening the editor.
		log.Debug("working tree is clean, nothing to edit")
		return nil
	}

	edited, err := editor.Edit(ctx, orig)
	if err != nil {
		return err
	}

	if edited.Len() == 0 {
		// An emptied buffer reverts or removes every listed change, so it
		// is guarded by the onEmptyBuffer policy.
		act, err := shouldActOnEmptyBuffer(ctx, log)
		if err != nil {
			return err
		}
		if !act {
			log.Debug("empty buffer, leaving the index untouched")
			return nil
		}
	}

	return reconcile.Apply(ctx, orig, edited)
}

// shouldActOnEmptyBuffer resolves the editIndex.onEmptyBuffer policy:
// "act" applies the empty buffer, "nothing" ignores it, "ask" (and unset)
// puts the question to the user.
func shouldActOnEmptyBuffer(ctx context.Context, log *output.Logger) (bool, error) {
	value, err := git.ConfigValue(ctx, git.OnEmptyBufferOption)
	if err != nil {
		return false, err
	}
	switch value {
	case "act":
		return true, nil
	case "nothing":
		return false, nil
	case "ask", "":
		return askActOnEmptyBuffer(log), nil
	default:
		return false, eierrors.NewConfigValueError(git.OnEmptyBufferOption, value)
	}
}

// askActOnEmptyBuffer asks the user whether the emptied buffer should be
// acted upon. The answer defaults to no, also when there is no terminal to
// ask on.
func askActOnEmptyBuffer(log *output.Logger) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		log.Debug("stdin is not a terminal, not acting on the empty buffer")
		return false
	}

	act := false
	prompt := &survey.Confirm{
		Message: "The buffer is empty. Do you want to revert or remove all listed changes?",
		Default: false,
	}
	if err := survey.AskOne(prompt, &act); err != nil {
		// Interrupted prompt counts as a no.
		return false
	}
	return act
}
