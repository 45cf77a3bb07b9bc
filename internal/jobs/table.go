package jobs

import (
	"sync"

	"golang.org/x/sys/unix"
)

// group is the internal bookkeeping record for one spawned pipeline: every
// pipeline the orchestrator spawns gets one, whether or not it ever becomes
// a visible Job. It is promoted to a visible Job (an allocated job_id,
// listed by `jobs`) either at creation time (background pipelines) or the
// first time one of its members is reported stopped (foreground pipelines
// stopped from the terminal), matching spec.md §3's Job lifecycle.
type group struct {
	job *Job

	members      map[int]struct{}
	lastStagePID int
	lastSignaled bool

	visible bool

	doneCh chan struct{}
	stopCh chan struct{}
}

// Table is the single owner of Job records (spec.md §3 "ShellState...
// Ownership"). It is mutated both by the REPL (Register, Forget,
// DrainCompleted, Continue) and by the asynchronous reaper goroutine (onExit/onStop) under
// the same mutex, satisfying spec.md §5's "no field is torn, no job is
// reaped twice" requirement.
type Table struct {
	mu       sync.Mutex
	groups   map[int]*group // keyed by pgid
	pidIndex map[int]*group // keyed by member pid
	visible  map[int]*Job   // keyed by allocated job_id
}

// NewTable constructs an empty job table.
func NewTable() *Table {
	return &Table{
		groups:   map[int]*group{},
		pidIndex: map[int]*group{},
		visible:  map[int]*Job{},
	}
}

// Handle is returned by Register and used by the pipeline orchestrator to
// wait for the group it just spawned.
type Handle struct {
	t    *Table
	pgid int
	job  *Job // set by Register; nil for handles made by HandleFor
}

// Register records a newly spawned pipeline's process group. members is
// every stage's PID; lastStagePID identifies which member's exit status
// becomes the pipeline's reported exit status (spec.md §4.6/§8 property 4).
// If background is true the job is immediately assigned a job_id and
// becomes visible to `jobs`; the caller is responsible for printing the
// "[id] pgid" submission line spec.md §4.6 step 5 requires.
func (t *Table) Register(pgid int, members []int, lastStagePID int, background bool, commandText string) (*Job, *Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	job := &Job{PGID: pgid, CommandText: commandText, Status: Running}
	g := &group{
		job:          job,
		members:      map[int]struct{}{},
		lastStagePID: lastStagePID,
		doneCh:       make(chan struct{}),
		stopCh:       make(chan struct{}),
	}
	for _, pid := range members {
		g.members[pid] = struct{}{}
		t.pidIndex[pid] = g
	}
	t.groups[pgid] = g

	if background {
		t.makeVisibleLocked(g)
	}

	return job, &Handle{t: t, pgid: pgid, job: job}
}

// Wait blocks until either every member of the group has exited (returns
// false) or a member reports stopped (returns true; the group is now Stopped).
// This is the Go rendering of spec.md §5's "blocking waitpid on foreground
// children" suspension point: the caller never calls wait itself, it only
// blocks on a channel the single reaper goroutine closes.
func (h *Handle) Wait() (stopped bool) {
	t := h.t
	t.mu.Lock()
	g, ok := t.groups[h.pgid]
	t.mu.Unlock()
	if !ok {
		return false
	}

	select {
	case <-g.doneCh:
		return false
	case <-g.stopCh:
		return true
	}
}

// Job returns the current snapshot of the group's Job record.
func (h *Handle) Job() Job {
	h.t.mu.Lock()
	defer h.t.mu.Unlock()
	if h.job != nil {
		return *h.job
	}
	if g, ok := h.t.groups[h.pgid]; ok {
		return *g.job
	}
	if j, ok := h.t.findDoneLocked(h.pgid); ok {
		return j
	}
	return Job{}
}

func (t *Table) findDoneLocked(pgid int) (Job, bool) {
	for _, j := range t.visible {
		if j.PGID == pgid {
			return *j, true
		}
	}
	return Job{}, false
}

// makeVisibleLocked assigns the group's job the smallest unused positive
// job_id and inserts it into the visible table. Caller must hold t.mu.
func (t *Table) makeVisibleLocked(g *group) {
	if g.visible {
		return
	}
	id := 1
	for {
		if _, taken := t.visible[id]; !taken {
			break
		}
		id++
	}
	g.job.ID = id
	g.visible = true
	t.visible[id] = g.job
}

// onExit is called by the reaper for every successfully-reaped pid. It
// updates membership and, once every member has exited, finalizes the
// group's status and wakes any foreground waiter.
func (t *Table) onExit(pid int, ws unix.WaitStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()

	g, ok := t.pidIndex[pid]
	if !ok {
		return
	}
	delete(t.pidIndex, pid)
	delete(g.members, pid)

	if pid == g.lastStagePID {
		if ws.Signaled() {
			g.job.ExitCode = 128 + int(ws.Signal())
			g.lastSignaled = true
		} else {
			g.job.ExitCode = ws.ExitStatus()
			g.lastSignaled = false
		}
	}

	if len(g.members) == 0 {
		delete(t.groups, g.job.PGID)
		if g.lastSignaled {
			g.job.Status = Terminated
		} else {
			g.job.Status = Done
		}
		close(g.doneCh)
	}
}

// onStop is called by the reaper when a member reports stopped. The whole
// group is marked Stopped and, if this is the first time this pipeline has
// been observed stopped, it is promoted to a visible Job.
func (t *Table) onStop(pid int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	g, ok := t.pidIndex[pid]
	if !ok {
		return
	}
	g.job.Status = Stopped
	t.makeVisibleLocked(g)

	select {
	case <-g.stopCh:
		// Already signaled for a previous stop of another member; a fresh
		// channel is needed so a later Continue/Wait pair can block again.
	default:
		close(g.stopCh)
	}
}

// List returns every currently visible job, sorted by ID.
func (t *Table) List() []Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Job, 0, len(t.visible))
	for _, j := range t.visible {
		out = append(out, *j)
	}
	sortJobsByID(out)
	return out
}

// Get returns the visible job with the given ID.
func (t *Table) Get(id int) (Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	j, ok := t.visible[id]
	if !ok {
		return Job{}, false
	}
	return *j, true
}

// DrainCompleted removes and returns every visible job that has reached
// Done or Terminated, freeing their IDs for reuse. Called at the REPL's
// prompt boundary (spec.md §5 "visible to the REPL at the next prompt
// boundary, where completed jobs are reported and reaped from the table").
func (t *Table) DrainCompleted() []Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Job
	for id, j := range t.visible {
		if j.Status == Done || j.Status == Terminated {
			out = append(out, *j)
			delete(t.visible, id)
		}
	}
	sortJobsByID(out)
	return out
}

// Continue marks the job Running and re-arms stop detection for its group.
// It sends no signal: `fg`/`bg` send SIGCONT to the returned pgid
// themselves. resume reports whether the group was still tracked (false if
// it has already fully exited).
func (t *Table) Continue(id int) (pgid int, resume bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	j, ok := t.visible[id]
	if !ok {
		return 0, false
	}
	g, ok := t.groups[j.PGID]
	if !ok {
		return j.PGID, false
	}
	j.Status = Running
	// A future stop of this group must be observable again.
	select {
	case <-g.stopCh:
		g.stopCh = make(chan struct{})
	default:
	}
	return j.PGID, true
}

// Forget removes a visible job without waiting for it, used once the
// shell has otherwise observed its completion (e.g. via fg's own wait).
func (t *Table) Forget(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.visible, id)
}

// HandleFor returns a waitable Handle for an already-registered group, used
// by fg to re-wait on a job it is resuming into the foreground.
func (t *Table) HandleFor(pgid int) *Handle {
	return &Handle{t: t, pgid: pgid}
}

func sortJobsByID(jobs []Job) {
	for i := 1; i < len(jobs); i++ {
		for j := i; j > 0 && jobs[j-1].ID > jobs[j].ID; j-- {
			jobs[j-1], jobs[j] = jobs[j], jobs[j-1]
		}
	}
}
