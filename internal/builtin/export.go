package builtin

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

func init() {
	register("export", export)
}

// export updates env/the process environment from a NAME=VALUE argument.
// With no argument it lists every variable as "export NAME=VALUE", quoting
// any value containing whitespace via go-shellquote so the printed line
// round-trips if pasted back (spec.md §4.7, SPEC_FULL.md §4.7).
func export(ctx *Context) int {
	args := ctx.Argv[1:]
	if len(args) == 0 {
		for _, name := range ctx.Shell.Env.Names() {
			value, _ := ctx.Shell.Env.Get(name)
			fmt.Fprintf(ctx.Stdout, "export %s=%s\n", name, quoteIfNeeded(value))
		}
		return 0
	}

	if len(args) != 1 {
		fmt.Fprintln(ctx.Stderr, "export: usage: export NAME=VALUE")
		return 1
	}

	name, value, ok := strings.Cut(args[0], "=")
	if !ok || name == "" {
		fmt.Fprintln(ctx.Stderr, "export: usage: export NAME=VALUE")
		return 1
	}

	ctx.Shell.Env.Set(name, value)
	return 0
}

func quoteIfNeeded(value string) string {
	if !strings.ContainsAny(value, " \t\n'\"") {
		return value
	}
	return shellquote.Join(value)
}
