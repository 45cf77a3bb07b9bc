package builtin

import (
	"fmt"
	"os"
)

func init() {
	register("cd", cd)
}

// cd implements spec.md §4.7's cd row: no argument goes home, "-" goes to
// $OLDPWD and prints the new path, anything else is a literal target.
// Success updates cwd and the PWD/OLDPWD environment pair; failure prints a
// diagnostic and leaves state untouched.
func cd(ctx *Context) int {
	args := ctx.Argv[1:]
	if len(args) > 1 {
		fmt.Fprintln(ctx.Stderr, "cd: too many arguments")
		return 1
	}

	old := ctx.Shell.Cwd
	var target string
	printTarget := false

	switch {
	case len(args) == 0:
		if ctx.Shell.Home == "" {
			fmt.Fprintln(ctx.Stderr, "cd: HOME not set")
			return 1
		}
		target = ctx.Shell.Home
	case args[0] == "-":
		oldpwd, ok := ctx.Shell.Env.Get("OLDPWD")
		if !ok || oldpwd == "" {
			fmt.Fprintln(ctx.Stderr, "cd: OLDPWD not set")
			return 1
		}
		target = oldpwd
		printTarget = true
	default:
		target = args[0]
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(ctx.Stderr, "cd: %v\n", err)
		return 1
	}

	resolved, err := os.Getwd()
	if err != nil {
		resolved = target
	}

	ctx.Shell.Cwd = resolved
	ctx.Shell.Env.Set("OLDPWD", old)
	ctx.Shell.Env.Set("PWD", resolved)

	if printTarget {
		fmt.Fprintln(ctx.Stdout, resolved)
	}
	return 0
}
