package main

// Notes:
// - runMain: we test exit codes and the messages printed for each failure
//   class. Conversion details are covered in convert_test.go.
// - main itself only wires os.Args and os.Exit and is not tested.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Exit codes and messages
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		in := setupTestDir(t, map[string]string{"index.gmi": "# Hi\n"})
		out := filepath.Join(t.TempDir(), "site")
		env, stdout, stderr := testEnv()

		code := runMain([]string{"gmi2html", in, out}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d\nstderr: %s", code, ExitSuccess, stderr)
		}
		if got := readTree(t, out)["index.html"]; got != "<h1>Hi</h1>\n" {
			t.Errorf("index.html = %q, want %q", got, "<h1>Hi</h1>\n")
		}
		if !strings.Contains(stdout.String(), "Created") {
			t.Errorf("stdout = %q, want created report", stdout)
		}
	})

	t.Run("missing arguments print usage to stdout", func(t *testing.T) {
		t.Parallel()

		for _, args := range [][]string{{"gmi2html"}, {"gmi2html", "only-input"}} {
			env, stdout, stderr := testEnv()

			code := runMain(args, env)

			if code != ExitFailure {
				t.Errorf("runMain(%v) = %d, want %d", args, code, ExitFailure)
			}
			if !strings.HasPrefix(stdout.String(), "Usage: gmi2html") {
				t.Errorf("stdout = %q, want usage", stdout)
			}
			if !strings.Contains(stdout.String(), "output directory must not exist") {
				t.Errorf("usage should mention the output directory rule")
			}
			if stderr.Len() != 0 {
				t.Errorf("stderr = %q, want empty", stderr)
			}
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()

		code := runMain([]string{"gmi2html", "--nope", "a", "b"}, env)

		if code != ExitFailure {
			t.Errorf("exit code = %d, want %d", code, ExitFailure)
		}
		if !strings.Contains(stderr.String(), "nope") {
			t.Errorf("stderr = %q, want parse error", stderr)
		}
		if !strings.HasPrefix(stdout.String(), "Usage:") {
			t.Errorf("stdout = %q, want usage", stdout)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()

		if code := runMain([]string{"gmi2html", "-h"}, env); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "--workers") {
			t.Errorf("stdout = %q, want full usage", stdout)
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()

		if code := runMain([]string{"gmi2html", "--version"}, env); code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if got, want := stdout.String(), "gmi2html "+Version+"\n"; got != want {
			t.Errorf("stdout = %q, want %q", got, want)
		}
	})

	t.Run("existing output directory", func(t *testing.T) {
		t.Parallel()

		in := setupTestDir(t, map[string]string{"index.gmi": "# Hi\n"})
		out := setupTestDir(t, map[string]string{"old.txt": "old"})
		env, _, stderr := testEnv()

		code := runMain([]string{"gmi2html", in, out}, env)

		if code != ExitFailure {
			t.Errorf("exit code = %d, want %d", code, ExitFailure)
		}
		lines := strings.Split(strings.TrimRight(stderr.String(), "\n"), "\n")
		if len(lines) < 2 || lines[1] != "Failed to copy directory" {
			t.Errorf("stderr = %q, want error then \"Failed to copy directory\"", stderr)
		}
		if !strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q, want hint", stderr)
		}
		if len(readTree(t, out)) != 1 {
			t.Error("existing output directory should be left untouched")
		}
	})

	t.Run("invalid config is reported with a hint", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()

		code := runMain([]string{"gmi2html", "-w", "-3", t.TempDir(), filepath.Join(t.TempDir(), "o")}, env)

		if code != ExitFailure {
			t.Errorf("exit code = %d, want %d", code, ExitFailure)
		}
		if !strings.Contains(stderr.String(), "conversion.workers") ||
			!strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q, want workers error with hint", stderr)
		}
		if strings.Contains(stderr.String(), "Unknown error occurred") {
			t.Errorf("config errors should not be reported as unknown: %q", stderr)
		}
	})
}

// ---------------------------------------------------------------------------
// TestVersion - Version variable
// ---------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	t.Parallel()

	// Version variable should be set (default is "dev")
	if Version == "" {
		t.Error("Version should not be empty")
	}
}
