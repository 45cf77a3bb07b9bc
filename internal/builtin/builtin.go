// Package builtin implements the commands that mutate shell state directly
// in the parent process: directory, environment, exit, history, and job
// control (spec.md §4.7's "tagged sum keyed by command name").
package builtin

import (
	"io"

	"github.com/adarshanand67/helix-shell/internal/state"
	"github.com/adarshanand67/helix-shell/internal/termctl"
)

// Context is everything a built-in needs: the argv it was called with
// (including argv[0], the built-in's own name), the shell state to read or
// mutate, the terminal controller (may be nil — fg skips the ownership
// handoff when it is nil or not a tty, and bg never uses it), and the
// stdout/stderr streams the pipeline's FD plan has already wired up for
// this invocation (spec.md §4.7's "redirection on a parent-run built-in is
// applied by temporarily swapping the shell's own standard descriptors").
type Context struct {
	Argv      []string
	Shell     *state.Shell
	Term      *termctl.Controller
	ShellPGID int
	Stdout    io.Writer
	Stderr    io.Writer
}

// Handler runs a built-in and returns its exit status.
type Handler func(ctx *Context) int

var registry = map[string]Handler{}

func register(name string, h Handler) {
	registry[name] = h
}

// Lookup returns the handler for name, if any.
func Lookup(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}

// IsBuiltin reports whether name names a built-in command.
func IsBuiltin(name string) bool {
	_, ok := registry[name]
	return ok
}
