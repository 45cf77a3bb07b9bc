// Command helix is an interactive Unix shell: tokenizer, parser, variable
// expander, path resolver, and pipeline executor with job control, wired
// together by internal/repl. Flag parsing follows lxc/main.go's shape
// (persistent flags + a single SilenceUsage/SilenceErrors cobra.Command),
// generalized from a subcommand tree to a single read-eval-print mode since
// Helix has exactly one thing to do.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adarshanand67/helix-shell/internal/execplan"
	"github.com/adarshanand67/helix-shell/internal/jobs"
	"github.com/adarshanand67/helix-shell/internal/logging"
	"github.com/adarshanand67/helix-shell/internal/repl"
	"github.com/adarshanand67/helix-shell/internal/state"
	"github.com/adarshanand67/helix-shell/internal/termctl"
)

// version is overridden at build time via -ldflags, matching the teacher's
// shared/version package convention.
var version = "0.0.0-dev"

func main() {
	// A self-reexec for a built-in run in subshell isolation (see
	// execplan/reexec.go) never goes through cobra at all: it is not a
	// user-facing invocation and must not be confused by flag parsing.
	if len(os.Args) > 1 && os.Args[1] == execplan.ReexecBuiltinFlag {
		os.Exit(execplan.RunBuiltinReexec(os.Args[2:]))
	}

	os.Exit(run())
}

func run() int {
	var (
		flagDebug   bool
		flagVerbose bool
		flagRCFile  string
		flagCommand string
	)

	app := &cobra.Command{
		Use:           "helix",
		Short:         "An interactive Unix shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	app.SetVersionTemplate("{{.Version}}\n")
	app.Flags().BoolVar(&flagDebug, "debug", false, "Show all debug messages")
	app.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show all informational messages")
	app.Flags().StringVar(&flagRCFile, "rcfile", "", "Source this file's lines before reading from the terminal")
	app.Flags().StringVarP(&flagCommand, "command", "c", "", "Run a single command non-interactively and exit")

	var exitCode int
	app.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = launch(flagDebug, flagVerbose, flagRCFile, flagCommand)
		return nil
	}

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "helix: %v\n", err)
		return 1
	}
	return exitCode
}

func launch(debug, verbose bool, rcfile, command string) int {
	logger := logging.New()
	if debug {
		logger.SetDebug()
	} else if verbose {
		logger.SetVerbose()
	}

	sh, err := state.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "helix: %v\n", err)
		return 1
	}

	reaper := jobs.NewReaper(sh.Jobs)
	reaper.Start()
	defer reaper.Stop()

	term := termctl.New(termctl.StdinFD())
	runner := &execplan.Runner{
		Env:       sh.Env,
		Table:     sh.Jobs,
		Term:      term,
		ShellPGID: os.Getpid(),
	}

	r := repl.New(sh, runner, term, logger)

	if rcfile != "" {
		lines, err := readLines(rcfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "helix: rcfile: %v\n", err)
		} else {
			r.RunScript(lines)
		}
	}

	if command != "" {
		r.Tick(command)
		return sh.LastStatus
	}

	return r.Run()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
