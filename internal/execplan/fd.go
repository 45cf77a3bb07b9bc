// Package execplan realizes a parsed pipeline: it opens redirection
// targets, spawns one process per stage wired through anonymous pipes, and
// orchestrates the whole pipeline's foreground/background execution.
package execplan

import (
	"fmt"
	"os"

	"github.com/adarshanand67/helix-shell/internal/ast"
)

// newFileMode is the mode new redirection targets are created with, before
// umask (spec.md §4.5).
const newFileMode = 0o644

// planned holds the concrete stdin/stdout/stderr for one stage. fileOpens
// lists every *os.File this call opened for a redirection target (not
// pipe ends) — the parent must close these once the stage has started,
// per spec.md §9's "scoped FD ownership" (redirection targets are owned by
// the child stage: dup-and-close before exec; in the os/exec rendering the
// dup happens inside Start(), so "close" here means the parent's own copy).
type planned struct {
	stdin, stdout, stderr *os.File
	fileOpens             []*os.File
}

// planFDs resolves cmd's final stdio, given the upstream/downstream pipe
// ends (nil if this stage is first/last). File redirections take priority
// over pipes (spec.md §4.5's priority rule): when both target the same
// stream, the file is used and the pipe end is left to the caller to close
// along with every other pipe end once the whole pipeline has been started
// (the Go rendering of "the pipe must still be closed... to avoid
// descriptor leakage": Go's close-on-exec default means the child never
// even sees it, so only the parent's bookkeeping is left to do).
func planFDs(cmd ast.Command, upstream, downstream *os.File) (planned, error) {
	var p planned

	if cmd.StdinFile != nil {
		f, err := os.OpenFile(*cmd.StdinFile, os.O_RDONLY, 0)
		if err != nil {
			return planned{}, fmt.Errorf("%s: %w", *cmd.StdinFile, err)
		}
		p.stdin = f
		p.fileOpens = append(p.fileOpens, f)
	} else {
		p.stdin = upstream
	}

	if cmd.StdoutFile != nil {
		flags := os.O_WRONLY | os.O_CREATE
		if cmd.StdoutAppend {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(*cmd.StdoutFile, flags, newFileMode)
		if err != nil {
			closeFiles(p.fileOpens)
			return planned{}, fmt.Errorf("%s: %w", *cmd.StdoutFile, err)
		}
		p.stdout = f
		p.fileOpens = append(p.fileOpens, f)
	} else {
		p.stdout = downstream
	}

	if cmd.StderrFile != nil {
		flags := os.O_WRONLY | os.O_CREATE
		if cmd.StderrAppend {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(*cmd.StderrFile, flags, newFileMode)
		if err != nil {
			closeFiles(p.fileOpens)
			return planned{}, fmt.Errorf("%s: %w", *cmd.StderrFile, err)
		}
		p.stderr = f
		p.fileOpens = append(p.fileOpens, f)
	}

	return p, nil
}

// OpenRedirections opens cmd's file redirections for a builtin running
// directly in the parent process (spec.md §4.7: "redirection on a
// parent-run built-in is applied by temporarily swapping the shell's own
// standard descriptors"). The returned stdin/stdout/stderr are nil when
// cmd does not redirect that stream, in which case the caller should fall
// back to its own stdio. Close every file in opened once the builtin has
// run.
func OpenRedirections(cmd ast.Command) (stdin, stdout, stderr *os.File, opened []*os.File, err error) {
	p, err := planFDs(cmd, nil, nil)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return p.stdin, p.stdout, p.stderr, p.fileOpens, nil
}
