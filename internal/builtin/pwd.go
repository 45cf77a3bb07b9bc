package builtin

import "fmt"

func init() {
	register("pwd", pwd)
}

// pwd prints the shell's tracked working directory. Unlike /bin/pwd it
// never re-stats the filesystem: ctx.Shell.Cwd is the single source of
// truth cd maintains (spec.md §3).
func pwd(ctx *Context) int {
	fmt.Fprintln(ctx.Stdout, ctx.Shell.Cwd)
	return 0
}
