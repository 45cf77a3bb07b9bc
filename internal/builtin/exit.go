package builtin

import (
	"fmt"
	"strconv"
)

func init() {
	register("exit", exit)
}

// exit sets Running = false. A numeric argument becomes the exit status; a
// non-numeric one is a usage error that does NOT exit (spec.md §4.7); no
// argument carries the shell's current last_exit_status forward.
func exit(ctx *Context) int {
	args := ctx.Argv[1:]
	if len(args) == 0 {
		ctx.Shell.Running = false
		return ctx.Shell.LastStatus
	}
	if len(args) > 1 {
		fmt.Fprintln(ctx.Stderr, "exit: too many arguments")
		return 1
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "exit: %s: numeric argument required\n", args[0])
		return 1
	}
	ctx.Shell.Running = false
	return n
}
