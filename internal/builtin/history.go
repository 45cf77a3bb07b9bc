package builtin

import "github.com/adarshanand67/helix-shell/internal/clitable"

func init() {
	register("history", historyCmd)
}

// historyCmd prints every retained line, 1-based index right-aligned
// (spec.md §4.7).
func historyCmd(ctx *Context) int {
	clitable.RenderHistory(ctx.Stdout, ctx.Shell.History.Entries())
	return 0
}
