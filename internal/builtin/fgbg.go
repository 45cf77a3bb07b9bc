package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

func init() {
	register("fg", fg)
	register("bg", bg)
}

// parseJobID accepts "3" or the conventional "%3" job-spec form.
func parseJobID(arg string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(arg, "%"))
}

// fg implements spec.md §4.7's fg row in full (explicitly not a stub, per
// the open-question decisions in DESIGN.md): give the terminal to the job's
// process group, send it SIGCONT (whether or not it was stopped), wait for
// it, then reclaim the terminal for the shell's own group regardless of
// outcome.
func fg(ctx *Context) int {
	args := ctx.Argv[1:]
	if len(args) != 1 {
		fmt.Fprintln(ctx.Stderr, "fg: usage: fg <job_id>")
		return 1
	}
	id, err := parseJobID(args[0])
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "fg: %s: no such job\n", args[0])
		return 1
	}

	job, ok := ctx.Shell.Jobs.Get(id)
	if !ok {
		fmt.Fprintf(ctx.Stderr, "fg: %d: no such job\n", id)
		return 1
	}

	pgid, resumable := ctx.Shell.Jobs.Continue(id)
	if !resumable {
		fmt.Fprintf(ctx.Stderr, "fg: %d: job has already completed\n", id)
		ctx.Shell.Jobs.Forget(id)
		return 1
	}

	fmt.Fprintln(ctx.Stdout, job.CommandText)

	if ctx.Term != nil && ctx.Term.IsTTY() {
		_ = ctx.Term.SetForeground(pgid)
	}
	_ = unix.Kill(-pgid, unix.SIGCONT)

	stopped := ctx.Shell.Jobs.HandleFor(pgid).Wait()

	if ctx.Term != nil && ctx.Term.IsTTY() {
		_ = ctx.Term.SetForeground(ctx.ShellPGID)
	}

	final, _ := ctx.Shell.Jobs.Get(id)
	if stopped {
		fmt.Fprintf(ctx.Stdout, "[%d]+  Stopped    %s\n", final.ID, final.CommandText)
		return final.ExitCode
	}
	ctx.Shell.Jobs.Forget(id)
	return final.ExitCode
}

// bg resumes a stopped job in the background: SIGCONT is sent and its
// status becomes Running, but the shell does not wait for it (spec.md
// §4.7).
func bg(ctx *Context) int {
	args := ctx.Argv[1:]
	if len(args) != 1 {
		fmt.Fprintln(ctx.Stderr, "bg: usage: bg <job_id>")
		return 1
	}
	id, err := parseJobID(args[0])
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "bg: %s: no such job\n", args[0])
		return 1
	}

	job, ok := ctx.Shell.Jobs.Get(id)
	if !ok {
		fmt.Fprintf(ctx.Stderr, "bg: %d: no such job\n", id)
		return 1
	}

	pgid, resumable := ctx.Shell.Jobs.Continue(id)
	if !resumable {
		fmt.Fprintf(ctx.Stderr, "bg: %d: job has already completed\n", id)
		ctx.Shell.Jobs.Forget(id)
		return 1
	}
	_ = unix.Kill(-pgid, unix.SIGCONT)

	fmt.Fprintf(ctx.Stdout, "[%d]+ %s &\n", id, job.CommandText)
	return 0
}
