package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gmi2html [flags] <input_directory> <output_directory>")
	fmt.Fprintln(w, "Note that output directory must not exist")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copy input_directory to output_directory and convert every gemtext")
	fmt.Fprintln(w, "document (.gmi) in the copy to HTML (.html). Other files are copied as is.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel conversions (1 = sequential, 0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "  -h, --help                Show this message")
	fmt.Fprintln(w, "      --version             Show version information")
}
