package builtin

import "github.com/adarshanand67/helix-shell/internal/clitable"

func init() {
	register("jobs", jobsCmd)
}

// jobsCmd prints every visible job as "[id] status command" (spec.md §4.7).
func jobsCmd(ctx *Context) int {
	clitable.RenderJobs(ctx.Stdout, ctx.Shell.Jobs.List())
	return 0
}
