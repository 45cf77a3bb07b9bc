// Package herrors defines the error-kind taxonomy used across Helix (§7 of
// the specification): not distinct Go types, but sentinel values wrapped
// with fmt.Errorf("%w: ...", Kind, ...) so callers branch on kind with
// errors.Is while still getting a human-readable message.
package herrors

import "errors"

var (
	// Syntax: the tokenizer/parser rejected the line. last_exit_status := 2.
	Syntax = errors.New("syntax error")
	// Resolution: executable not found (127) or not executable (126).
	Resolution = errors.New("resolution error")
	// IO: opening a redirection target failed (done in the shell process
	// before any fork).
	IO = errors.New("io error")
	// Spawn: fork or pipe creation failed; the pipeline never executed.
	Spawn = errors.New("spawn error")
	// Builtin: invalid built-in argument. last_exit_status := 1.
	Builtin = errors.New("builtin error")
	// Fatal: broken terminal I/O; the shell cannot continue.
	Fatal = errors.New("fatal error")
)

// ExitStatusFor maps an error kind to the last_exit_status value §7/§8
// mandate when no more specific exit code is available (e.g. a spawn
// failure that never produced a child process to report its own code).
func ExitStatusFor(err error) int {
	switch {
	case errors.Is(err, Syntax):
		return 2
	case errors.Is(err, Resolution), errors.Is(err, IO), errors.Is(err, Spawn), errors.Is(err, Builtin):
		return 1
	default:
		return 1
	}
}
