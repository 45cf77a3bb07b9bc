// Package clitable renders `jobs` and `history` output as aligned columns,
// grounded on the teacher's lxc/util/table.go compact-table mode: no header
// row, no border, no column separator — just alignment, since spec.md
// prescribes exact line formats ("[id] status command", right-aligned
// history index) rather than a boxed table.
package clitable

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/adarshanand67/helix-shell/internal/history"
	"github.com/adarshanand67/helix-shell/internal/jobs"
)

func newCompact(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoWrapText(false)
	t.SetColumnSeparator("")
	t.SetHeaderLine(false)
	t.SetBorder(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	return t
}

// RenderJobs writes one line per job as "[id] status command" (spec.md §4.7).
func RenderJobs(w io.Writer, list []jobs.Job) {
	if len(list) == 0 {
		return
	}
	t := newCompact(w)
	for _, j := range list {
		t.Append([]string{"[" + strconv.Itoa(j.ID) + "]", j.Status.String(), j.CommandText})
	}
	t.Render()
}

// RenderHistory writes one line per entry with a right-aligned 1-based
// index followed by the original command line (spec.md §4.7 "Print entries
// 1-based with right-aligned index").
func RenderHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		return
	}
	t := newCompact(w)
	t.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, e := range entries {
		t.Append([]string{strconv.Itoa(e.Index), e.Line})
	}
	t.Render()
}
