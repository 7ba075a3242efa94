package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses args (args[0] is the program name), runs the site
// conversion and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stdout)
		return ExitFailure
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "gmi2html %s\n", Version)
		return ExitSuccess
	}
	if len(positional) < requiredArgs {
		printUsage(env.Stdout)
		return ExitFailure
	}

	setMaxProcs(flags.common.verbose, env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return reportError(runConvert(ctx, positional, flags, env), env)
}

// setMaxProcs configures GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// reportError prints err the way its class requires and returns the exit code.
func reportError(err error, env *Environment) int {
	switch classifyError(err) {
	case errorClassNone:
		return ExitSuccess
	case errorClassCopy:
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Failed to copy directory"+hintFor(err))
	case errorClassConfig:
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
	default:
		fmt.Fprintf(env.Stderr, "Unknown error occurred: %v\n", err)
	}
	return ExitFailure
}
