package execplan

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/adarshanand67/helix-shell/internal/ast"
	"github.com/adarshanand67/helix-shell/internal/environ"
	"github.com/adarshanand67/helix-shell/internal/jobs"
	"github.com/adarshanand67/helix-shell/internal/termctl"
)

// Result is what running one pipeline leaves the REPL to act on.
type Result struct {
	ExitCode int
	// Stopped is true when a foreground pipeline was suspended (Ctrl-Z);
	// the caller must not treat this as completion.
	Stopped bool
	// Job is non-nil when the pipeline is now tracked in the job table,
	// either because it was launched in the background or because it was
	// stopped while in the foreground.
	Job *jobs.Job
}

// Runner owns everything a pipeline launch needs beyond the parsed AST:
// the environment to exec children with, the job table to register into,
// and (when attached to a terminal) the controller used to hand off and
// reclaim foreground ownership. Grounded on lxd-agent/exec.go's execWs,
// which bundles the same three concerns (env, process tracking, terminal)
// behind one launcher.
type Runner struct {
	Env       *environ.Env
	Table     *jobs.Table
	Term      *termctl.Controller // may be nil; handoff is skipped when nil or not a tty
	ShellPGID int
}

// Run plans, starts, and (for a foreground pipeline) waits on pl. cwd is the
// working directory new children are started in.
func (r *Runner) Run(pl *ast.Pipeline, cwd string) Result {
	stages, pipes, planErr := r.planAll(pl, cwd)
	defer closePipeFiles(pipes)

	if planErr != nil {
		fmt.Fprintln(os.Stderr, planErr.diagnostic)
		return Result{ExitCode: planErr.exitCode}
	}

	if err := r.startAll(stages); err != nil {
		fmt.Fprintln(os.Stderr, err.diagnostic)
		return Result{ExitCode: err.exitCode}
	}

	// Every child now holds its own copy of whatever pipe ends it needs;
	// the parent's copies are only a descriptor leak if kept open past
	// this point (spec.md §4.6 step 3).
	closePipeFiles(pipes)
	closeStageFiles(stages)

	pgid := stages[0].cmd.Process.Pid
	members := make([]int, 0, len(stages))
	for _, st := range stages {
		members = append(members, st.cmd.Process.Pid)
	}
	lastPID := stages[len(stages)-1].cmd.Process.Pid

	job, handle := r.Table.Register(pgid, members, lastPID, pl.Background, pl.Raw)

	if pl.Background {
		fmt.Fprintf(os.Stdout, "[%d] %d\n", job.ID, pgid)
		return Result{ExitCode: 0, Job: job}
	}

	if r.Term != nil && r.Term.IsTTY() {
		_ = r.Term.SetForeground(pgid)
	}

	stopped := handle.Wait()

	if r.Term != nil && r.Term.IsTTY() {
		_ = r.Term.SetForeground(r.ShellPGID)
	}

	final := handle.Job()
	if stopped {
		fmt.Fprintf(os.Stdout, "[%d]+  Stopped    %s\n", final.ID, final.CommandText)
		return Result{ExitCode: final.ExitCode, Stopped: true, Job: &final}
	}
	return Result{ExitCode: final.ExitCode}
}

// failure carries a synthetic pipeline-level result for cases that never
// reach a running process (planning/spawn failure).
type failure struct {
	exitCode   int
	diagnostic string
}

// planAll resolves every stage's command and FDs before any process is
// started. If any stage can't be resolved or opened, the whole pipeline is
// aborted without forking — the design decision recorded in DESIGN.md: Go's
// os/exec.Start already reports a failed exec(2) synchronously and never
// leaves a zombie behind, so there is nothing a partially-forked pipeline
// would gain over rejecting it up front. On failure the first (left-most)
// failing stage's diagnostic and exit code are reported, matching a
// pipeline's left-to-right command order.
func (r *Runner) planAll(pl *ast.Pipeline, cwd string) ([]stage, []*os.File, *failure) {
	n := len(pl.Stages)
	stages := make([]stage, n)
	var pipeFiles []*os.File

	var upstream *os.File
	leaderPGID := 0

	for i, cmd := range pl.Stages {
		var downstream, nextUpstream *os.File
		if i < n-1 {
			readEnd, writeEnd, err := os.Pipe()
			if err != nil {
				closeStageFiles(stages[:i])
				return nil, pipeFiles, &failure{exitCode: 1, diagnostic: fmt.Sprintf("helix: pipe: %v", err)}
			}
			downstream = writeEnd
			nextUpstream = readEnd
			pipeFiles = append(pipeFiles, readEnd, writeEnd)
		}

		st := planStage(cmd, r.Env, cwd, upstream, downstream, leaderPGID)
		stages[i] = st
		if st.preExecFailed {
			closeStageFiles(stages[:i])
			return nil, pipeFiles, &failure{exitCode: st.exitCode, diagnostic: st.diagnostic}
		}

		upstream = nextUpstream
	}

	return stages, pipeFiles, nil
}

// startAll forks every stage in order. The first stage becomes its own
// process group leader (Pgid left at 0 by planStage); every later stage is
// planned to join it, so by the time startAll reaches stage i>0 the leader's
// PID is already known and baked into that stage's SysProcAttr. After each
// Start() the parent repeats the same setpgid(2) call the child already
// issued on itself (spec.md §4.6 step 4's "both parent and child perform the
// idempotent group-join"): whichever side loses the race against the other
// still leaves the group correctly formed, and a child that has already
// exited by the time the parent's call runs simply reports ESRCH, which is
// not an error worth surfacing.
func (r *Runner) startAll(stages []stage) *failure {
	var leaderPID int
	for i := range stages {
		if i > 0 {
			stages[i].cmd.SysProcAttr.Pgid = leaderPID
		}
		if err := stages[i].cmd.Start(); err != nil {
			code, diag := classifyStartError(err)
			for j := 0; j < i; j++ {
				_ = stages[j].cmd.Process.Kill()
			}
			return &failure{exitCode: code, diagnostic: diag}
		}
		if i == 0 {
			leaderPID = stages[0].cmd.Process.Pid
			_ = unix.Setpgid(leaderPID, leaderPID)
		} else {
			_ = unix.Setpgid(stages[i].cmd.Process.Pid, leaderPID)
		}
	}
	return nil
}

func closePipeFiles(files []*os.File) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}

func closeStageFiles(stages []stage) {
	for _, st := range stages {
		closeFiles(st.fileOpens)
	}
}
