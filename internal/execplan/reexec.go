package execplan

import (
	"fmt"
	"os"

	"github.com/adarshanand67/helix-shell/internal/builtin"
	"github.com/adarshanand67/helix-shell/internal/environ"
	"github.com/adarshanand67/helix-shell/internal/history"
	"github.com/adarshanand67/helix-shell/internal/jobs"
	"github.com/adarshanand67/helix-shell/internal/state"
)

// ReexecBuiltinFlag is the hidden argv[1] cmd/helix checks for on startup to
// tell a self-reexecuted process apart from a normal interactive launch.
// Grounded on the teacher's own "forkstart"-style self-reexec
// (lxd/container_lxc.go calls back into its own ExecPath with a hidden verb
// rather than trying to fork a running Go process in place): when a
// built-in appears in a pipeline stage or is backgrounded, spec.md §4.7
// requires it to run in a "subshell-equivalent child" so its state
// mutations (cd, export, ...) never leak back into the parent shell. Go
// cannot fork just a function, so Helix execs a fresh copy of itself
// instead, which is both simpler and gives the child real process isolation
// for free.
const ReexecBuiltinFlag = "__helix_builtin__"

// RunBuiltinReexec is cmd/helix's entire body when launched with
// ReexecBuiltinFlag: look up argv[0] and run it against a freshly-seeded,
// throwaway Shell. Any state it mutates (cwd, env, a job table) dies with
// this process, which is exactly the isolation spec.md §4.7 asks for.
func RunBuiltinReexec(argv []string) int {
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, "helix: missing builtin name")
		return 1
	}

	handler, ok := builtin.Lookup(argv[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "helix: %s: not a builtin\n", argv[0])
		return 127
	}

	cwd, _ := os.Getwd()
	sh := &state.Shell{
		Cwd:     cwd,
		Env:     environ.FromProcess(),
		History: history.New(history.DefaultCapacity),
		Jobs:    jobs.NewTable(),
		Running: true,
	}
	home, _ := sh.Env.Get("HOME")
	sh.Home = home

	ctx := &builtin.Context{
		Argv:   argv,
		Shell:  sh,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return handler(ctx)
}
