// Package state defines Shell, the single owning container for everything
// a running Helix session carries (spec.md §3's ShellState, and §9's note
// that the signal router must not hold a reference back to it — only to
// the job table it mutates).
package state

import (
	"os"

	"github.com/adarshanand67/helix-shell/internal/environ"
	"github.com/adarshanand67/helix-shell/internal/history"
	"github.com/adarshanand67/helix-shell/internal/jobs"
)

// Shell is the mutable state a REPL tick reads and updates: cwd, home,
// last_exit_status, history, environment, the running flag, and the job
// table (spec.md §3).
type Shell struct {
	Cwd        string
	Home       string
	LastStatus int
	Running    bool

	Env     *environ.Env
	History *history.Ring
	Jobs    *jobs.Table
}

// New builds a Shell seeded from the current process: cwd from os.Getwd,
// home from $HOME, environment snapshotted via environ.FromProcess.
func New() (*Shell, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	env := environ.FromProcess()
	home, _ := env.Get("HOME")

	return &Shell{
		Cwd:        cwd,
		Home:       home,
		LastStatus: 0,
		Running:    true,
		Env:        env,
		History:    history.New(history.DefaultCapacity),
		Jobs:       jobs.NewTable(),
	}, nil
}
