// Package termctl owns the controlling terminal: foreground process-group
// handoff and raw-mode toggling, grounded on lxc/exec.go's
// termios.MakeRaw/GetSize/Restore sequence, reimplemented over
// golang.org/x/term plus golang.org/x/sys/unix ioctls for the pgid
// ownership calls the client-side teacher code never needed (its terminal
// ownership is brokered over a websocket, not a local pgid).
package termctl

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Controller owns the Unix terminal fd the shell is attached to (normally
// os.Stdin's fd when it is a tty).
type Controller struct {
	fd int
}

// New returns a Controller over fd. IsTTY reports whether fd is actually a
// terminal; callers should skip all ownership/raw-mode operations when it
// is not (e.g. when Helix's stdin is a pipe or file).
func New(fd int) *Controller {
	return &Controller{fd: fd}
}

// IsTTY reports whether the controller's fd refers to a terminal.
func (c *Controller) IsTTY() bool {
	return term.IsTerminal(c.fd)
}

// ForegroundPGID returns the process group currently owning the terminal.
func (c *Controller) ForegroundPGID() (int, error) {
	return unix.IoctlGetInt(c.fd, unix.TIOCGPGRP)
}

// SetForeground hands terminal ownership to pgid. A bare tcsetpgrp call
// from a background process would itself be stopped by SIGTTOU, so the
// signal is ignored for the duration of the call — a shell performing job
// control is precisely such a "background" process relative to the group
// it is handing the terminal to.
func (c *Controller) SetForeground(pgid int) error {
	signal.Ignore(unix.SIGTTOU)
	defer signal.Reset(unix.SIGTTOU)
	return unix.IoctlSetPointerInt(c.fd, unix.TIOCSPGRP, pgid)
}

// Size returns the terminal's current width and height in columns/rows.
func (c *Controller) Size() (width, height int, err error) {
	return term.GetSize(c.fd)
}

// State is an opaque snapshot of terminal attributes, returned by
// MakeRaw and consumed by Restore.
type State struct {
	inner *term.State
}

// MakeRaw puts the terminal into raw mode, returning the previous state.
func (c *Controller) MakeRaw() (*State, error) {
	st, err := term.MakeRaw(c.fd)
	if err != nil {
		return nil, err
	}
	return &State{inner: st}, nil
}

// Restore returns the terminal to a previously saved state.
func (c *Controller) Restore(st *State) error {
	if st == nil || st.inner == nil {
		return nil
	}
	return term.Restore(c.fd, st.inner)
}

// StdinFD is a convenience accessor for os.Stdin's descriptor.
func StdinFD() int {
	return int(os.Stdin.Fd())
}
