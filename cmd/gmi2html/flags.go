package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// workersUnset detects if --workers was explicitly set.
// Since 0 is a valid count (auto), we use an out-of-range sentinel.
const workersUnset = -1

// requiredArgs is the number of positional arguments: input and output directory.
const requiredArgs = 2

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for a site conversion.
type convertFlags struct {
	common  commonFlags
	workers int
	help    bool
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// parseConvertFlags parses flags and returns positional args.
// Usage is printed by the caller; the FlagSet itself stays silent.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("gmi2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &convertFlags{}

	fs.IntVarP(&f.workers, "workers", "w", workersUnset, "parallel conversions (1 = sequential, 0 = auto)")
	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.help, "help", "h", false, "show usage")
	fs.BoolVar(&f.version, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
