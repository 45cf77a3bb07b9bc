package jobs

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Reaper is the asynchronous half of the signal router: a goroutine that
// wakes on SIGCHLD and drains every reapable child status with a
// non-blocking Wait4 loop, updating the Table and nothing else. This is the
// Go rendering of spec.md §5's signal-handler constraint ("no I/O, no
// allocation, no mutex acquisition inside the handler") — Go delivers
// SIGCHLD to this goroutine over a channel rather than interrupting
// arbitrary code, so the handler body itself never runs in a true async
// signal context; it still does the minimum possible work per wakeup.
type Reaper struct {
	table *Table
	sigCh chan os.Signal
	done  chan struct{}
}

// NewReaper creates a Reaper bound to table. Call Start to begin servicing
// SIGCHLD; call Stop to shut it down.
func NewReaper(table *Table) *Reaper {
	return &Reaper{
		table: table,
		sigCh: make(chan os.Signal, 8),
		done:  make(chan struct{}),
	}
}

// Start begins the reaper goroutine.
func (r *Reaper) Start() {
	signal.Notify(r.sigCh, unix.SIGCHLD)
	go r.loop()
}

// Stop halts signal delivery and terminates the goroutine.
func (r *Reaper) Stop() {
	signal.Stop(r.sigCh)
	close(r.done)
}

func (r *Reaper) loop() {
	for {
		select {
		case <-r.done:
			return
		case <-r.sigCh:
			r.drain()
		}
	}
}

// drain reaps every child status currently available without blocking.
// It is called only from loop, once per SIGCHLD wakeup.
func (r *Reaper) drain() {
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG|unix.WUNTRACED|unix.WCONTINUED, nil)
		if err != nil || pid <= 0 {
			return
		}

		switch {
		case ws.Stopped():
			r.table.onStop(pid)
		case ws.Exited(), ws.Signaled():
			r.table.onExit(pid, ws)
		default:
			// Continued or another transition we don't track explicitly;
			// fg/bg already updates Status synchronously on resume.
		}
	}
}
