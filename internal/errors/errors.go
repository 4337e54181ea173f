// Package errors provides sentinel errors and custom error types for git-edit-index.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoEditor indicates that no editor could be resolved from git or the environment
	ErrNoEditor = errors.New("no editor configured")

	// ErrNotARepository indicates that the current directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")
)

// ConfigValueError represents an unsupported value of a git config option
type ConfigValueError struct {
	Option string
	Value  string
}

func (e *ConfigValueError) Error() string {
	return fmt.Sprintf("unsupported value %q of the %s config option", e.Value, e.Option)
}

// NewConfigValueError creates a new ConfigValueError
func NewConfigValueError(option, value string) *ConfigValueError {
	return &ConfigValueError{Option: option, Value: value}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
