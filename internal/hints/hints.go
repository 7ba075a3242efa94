// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-gmi2html/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForOutputExists returns a hint for an output directory that already exists.
func ForOutputExists() string {
	return format("choose a new output directory or remove the existing one")
}

// ForOutputInsideInput returns a hint for an output directory nested in the input.
func ForOutputInsideInput() string {
	return format("place the output directory outside the input directory")
}

// ForPermission returns hints for permission errors while copying or writing.
// In a container the usual culprit is a read-only bind mount.
func ForPermission() string {
	hints := []string{"check the output parent directory is writable"}
	if IsInContainer() {
		hints = append(hints, "mount the output volume read-write")
	}
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-gmi2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-gmi2html) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-gmi2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInvalidConfig returns a hint listing the accepted configuration keys.
func ForInvalidConfig() string {
	return format("valid keys: documents.extension, documents.outputExtension, " +
		"conversion.workers, conversion.normalizeLineEndings")
}

// ForUnclosedLiteral returns a hint for a document whose preformatted block
// never closes.
func ForUnclosedLiteral() string {
	return format("add a closing ``` line; the rest of the page was rendered inside <pre>")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
