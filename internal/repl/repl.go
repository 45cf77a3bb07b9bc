// Package repl drives the read-eval-print loop: it wires the lexer,
// parser, expander, built-in dispatcher, and execplan orchestrator behind
// one Tick per accepted line (spec.md §2's data flow: "raw line → tokens →
// parsed pipeline → (builtin path OR spawn path)").
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adarshanand67/helix-shell/internal/ast"
	"github.com/adarshanand67/helix-shell/internal/builtin"
	"github.com/adarshanand67/helix-shell/internal/execplan"
	"github.com/adarshanand67/helix-shell/internal/expand"
	"github.com/adarshanand67/helix-shell/internal/herrors"
	"github.com/adarshanand67/helix-shell/internal/lexer"
	"github.com/adarshanand67/helix-shell/internal/logging"
	"github.com/adarshanand67/helix-shell/internal/parser"
	"github.com/adarshanand67/helix-shell/internal/state"
	"github.com/adarshanand67/helix-shell/internal/termctl"
	"github.com/adarshanand67/helix-shell/internal/token"
)

// LineSource supplies one line of input per call. Out of scope per spec.md
// §1 (the real line-editing/completion engine is an external collaborator);
// DefaultLineSource below is the minimal implementation Helix ships with.
type LineSource interface {
	ReadLine(prompt string) (line string, ok bool)
}

// PromptRenderer formats the prompt string from shell state. Out of scope
// per spec.md §1; must not panic — DefaultPromptRenderer is the fallback
// ASCII implementation §6 requires on renderer error.
type PromptRenderer interface {
	Render(cwd, home string, lastStatus int, user, host string) string
}

// REPL ties every core component to one running Shell.
type REPL struct {
	Shell     *state.Shell
	Runner    *execplan.Runner
	Term      *termctl.Controller
	Logger    *logging.Logger
	ShellPGID int

	Lines  LineSource
	Prompt PromptRenderer

	Stdout io.Writer
	Stderr io.Writer
}

// New builds a REPL over the given shell, runner, terminal controller and
// logger. Lines is always a DefaultLineSource over os.Stdin and Prompt a
// DefaultPromptRenderer; callers may replace either field afterwards.
func New(sh *state.Shell, runner *execplan.Runner, term *termctl.Controller, logger *logging.Logger) *REPL {
	return &REPL{
		Shell:     sh,
		Runner:    runner,
		Term:      term,
		Logger:    logger,
		ShellPGID: os.Getpid(),
		Lines:     NewDefaultLineSource(os.Stdin),
		Prompt:    DefaultPromptRenderer{},
	}
}

// Run loops ReadLine -> Tick until the shell's Running flag clears or the
// line source is exhausted (EOF behaves like `exit` with no argument,
// matching an interactive shell's Ctrl-D convention).
func (r *REPL) Run() int {
	r.Logger.Debug("repl starting", logging.Ctx{"cwd": r.Shell.Cwd})
	for r.Shell.Running {
		r.reportCompletedJobs()

		user, _ := r.Shell.Env.Get("USER")
		host, _ := os.Hostname()
		prompt := r.Prompt.Render(r.Shell.Cwd, r.Shell.Home, r.Shell.LastStatus, user, host)

		line, ok := r.Lines.ReadLine(prompt)
		if !ok {
			r.Shell.Running = false
			break
		}
		r.Tick(line)
	}
	return r.Shell.LastStatus
}

// RunScript feeds every line of src through Tick in turn, stopping early if
// the shell exits — the same mechanism cmd/helix uses for --rcfile (spec.md
// §6's "config loader boundary": rc syntax is just Helix syntax, fed
// through the one real interpreter).
func (r *REPL) RunScript(lines []string) {
	for _, line := range lines {
		if !r.Shell.Running {
			return
		}
		r.Tick(line)
	}
}

// Tick parses and executes exactly one line, updating Shell.LastStatus.
func (r *REPL) Tick(line string) {
	if strings.TrimSpace(line) == "" {
		// spec.md §8 property 8: a no-op, does not touch last_exit_status.
		return
	}

	r.Shell.History.Add(line)

	toks := lexer.Tokenize(line)
	if lexer.Unterminated(toks) {
		fmt.Fprintln(r.errOut(), "helix: syntax error: unterminated quote")
		r.Shell.LastStatus = herrors.ExitStatusFor(herrors.Syntax)
		return
	}

	r.expandTokens(toks)

	pipeline, err := parser.ParseTokens(toks, line)
	if err != nil {
		fmt.Fprintf(r.errOut(), "helix: syntax error: %v\n", err)
		r.Shell.LastStatus = herrors.ExitStatusFor(herrors.Syntax)
		return
	}

	r.Shell.LastStatus = r.execute(pipeline)
}

// expandTokens applies $NAME/${NAME} expansion to every unquoted WORD
// token in place (spec.md §4.3); single-quoted words are left untouched.
func (r *REPL) expandTokens(toks []token.Token) {
	lookup := func(name string) (string, bool) { return r.Shell.Env.Get(name) }
	for i := range toks {
		if toks[i].Kind == token.WORD && !toks[i].Quoted {
			toks[i].Lexeme = expand.Expand(toks[i].Lexeme, lookup)
		}
	}
}

// execute chooses between the built-in (parent-process) path and the spawn
// path (spec.md §4.7): a single, foreground stage naming a built-in runs
// in-process; everything else — including a built-in that appears
// mid-pipeline or backgrounded — goes through the ordinary spawn path,
// where execplan transparently re-execs Helix itself for the built-in
// (reexec.go), giving it the subshell isolation the spec requires.
func (r *REPL) execute(pl *ast.Pipeline) int {
	if len(pl.Stages) == 1 && !pl.Background {
		name := pl.Stages[0].Argv[0]
		if handler, ok := builtin.Lookup(name); ok {
			return r.runBuiltinInParent(handler, pl.Stages[0])
		}
	}

	res := r.Runner.Run(pl, r.Shell.Cwd)
	return res.ExitCode
}

// runBuiltinInParent executes a built-in directly, applying any file
// redirection by swapping in the opened files as its Stdout/Stderr for the
// duration of the call (spec.md §4.7). An input redirection is opened (so a
// missing file still fails the command) but its file is not passed on.
func (r *REPL) runBuiltinInParent(handler builtin.Handler, cmd ast.Command) int {
	stdin, stdout, stderr, opened, err := execplan.OpenRedirections(cmd)
	if err != nil {
		fmt.Fprintf(r.errOut(), "helix: %v\n", err)
		return herrors.ExitStatusFor(herrors.IO)
	}
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	out := r.outOut()
	if stdout != nil {
		out = stdout
	}
	errW := r.errOut()
	if stderr != nil {
		errW = stderr
	}
	_ = stdin // builtins never read stdin in this shell's command set

	ctx := &builtin.Context{
		Argv:      cmd.Argv,
		Shell:     r.Shell,
		Term:      r.Term,
		ShellPGID: r.ShellPGID,
		Stdout:    out,
		Stderr:    errW,
	}
	return handler(ctx)
}

func (r *REPL) outOut() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *REPL) errOut() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func (r *REPL) reportCompletedJobs() {
	for _, j := range r.Shell.Jobs.DrainCompleted() {
		fmt.Fprintf(r.outOut(), "[%d]  %s    %s\n", j.ID, j.Status, j.CommandText)
	}
}
