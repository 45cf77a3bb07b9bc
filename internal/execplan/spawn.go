package execplan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/adarshanand67/helix-shell/internal/ast"
	"github.com/adarshanand67/helix-shell/internal/builtin"
	"github.com/adarshanand67/helix-shell/internal/environ"
	"github.com/adarshanand67/helix-shell/internal/pathresolve"
)

// stage is one realized (but not necessarily started) pipeline member.
// Grounded on lxd-agent/exec.go's execWs.Do: an *exec.Cmd carrying
// already-resolved stdio and a SysProcAttr that joins the pipeline's
// process group.
type stage struct {
	cmd *exec.Cmd

	// set when resolution/open failed before a process could even be
	// forked; cmd stays nil and exitCode/diagnostic carry the synthetic
	// result the orchestrator reports on this stage's behalf.
	preExecFailed bool
	exitCode      int
	diagnostic    string

	// fileOpens are the redirection-target files this stage opened; the
	// parent must close its own copy of each once the stage has started
	// (spec.md §9 "scoped FD ownership").
	fileOpens []*os.File
}

// planStage resolves cmd's executable and FDs and builds the *exec.Cmd for
// it, but does not start it. leaderPGID becomes SysProcAttr.Pgid; planAll
// passes 0 for every stage (0 means: become the process group leader), and
// startAll overwrites it with the leader's PID for every later stage once
// the first stage has started.
func planStage(cmd ast.Command, env *environ.Env, cwd string, upstream, downstream *os.File, leaderPGID int) stage {
	fds, err := planFDs(cmd, upstream, downstream)
	if err != nil {
		return stage{
			preExecFailed: true,
			exitCode:      1,
			diagnostic:    fmt.Sprintf("helix: %v", err),
		}
	}

	name := cmd.Argv[0]

	var resolved string
	var execArgs []string

	if builtin.IsBuiltin(name) {
		// A builtin mid-pipeline or backgrounded runs in a subshell-
		// equivalent child (spec.md §4.7): re-exec this same binary with
		// ReexecBuiltinFlag so the builtin's state mutations never reach
		// the parent shell. See reexec.go for the grounding.
		self, err := os.Executable()
		if err != nil {
			closeFiles(fds.fileOpens)
			return stage{
				preExecFailed: true,
				exitCode:      1,
				diagnostic:    fmt.Sprintf("helix: %v", err),
			}
		}
		resolved = self
		execArgs = append([]string{ReexecBuiltinFlag}, cmd.Argv...)
	} else {
		pathEnv, _ := env.Get("PATH")
		r, ok := pathresolve.ResolveSystem(name, pathEnv)
		if !ok {
			closeFiles(fds.fileOpens)
			if strings.Contains(name, "/") {
				if _, statErr := os.Stat(name); statErr == nil {
					return stage{
						preExecFailed: true,
						exitCode:      126,
						diagnostic:    fmt.Sprintf("helix: %s: not executable", name),
					}
				}
			}
			return stage{
				preExecFailed: true,
				exitCode:      127,
				diagnostic:    fmt.Sprintf("helix: %s: command not found", name),
			}
		}
		if info, statErr := os.Stat(r); statErr == nil && info.IsDir() {
			closeFiles(fds.fileOpens)
			return stage{
				preExecFailed: true,
				exitCode:      126,
				diagnostic:    fmt.Sprintf("helix: %s: not executable", name),
			}
		}
		resolved = r
		execArgs = cmd.Argv[1:]
	}

	c := exec.Command(resolved, execArgs...)
	c.Dir = cwd
	c.Env = env.Slice()

	if fds.stdin != nil {
		c.Stdin = fds.stdin
	} else {
		c.Stdin = os.Stdin
	}
	if fds.stdout != nil {
		c.Stdout = fds.stdout
	} else {
		c.Stdout = os.Stdout
	}
	if fds.stderr != nil {
		c.Stderr = fds.stderr
	} else {
		c.Stderr = os.Stderr
	}

	c.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    leaderPGID,
	}

	return stage{cmd: c, fileOpens: fds.fileOpens}
}

// classifyStartError maps an exec.Cmd.Start failure to the spec.md §4.5
// exit-code convention (127 not found, 126 not executable, 1 otherwise).
func classifyStartError(err error) (code int, diagnostic string) {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return 127, fmt.Sprintf("helix: command not found: %v", err)
	case errors.Is(err, fs.ErrPermission):
		return 126, fmt.Sprintf("helix: permission denied: %v", err)
	default:
		return 1, fmt.Sprintf("helix: %v", err)
	}
}

func closeFiles(files []*os.File) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}
