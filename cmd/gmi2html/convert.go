package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	gmi2html "github.com/alnah/go-gmi2html"
	"github.com/alnah/go-gmi2html/internal/config"
	"github.com/alnah/go-gmi2html/internal/fileutil"
	"github.com/alnah/go-gmi2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrCopyFailed = errors.New("failed to copy directory")
)

// copyError keeps the underlying copy failure as its message while
// matching ErrCopyFailed.
type copyError struct {
	err error
}

func (e *copyError) Error() string { return e.err.Error() }

func (e *copyError) Unwrap() []error { return []error{ErrCopyFailed, e.err} }

// runConvert orchestrates the site conversion: copy the input tree, find
// the documents in the copy, convert them, and report.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	start := env.Now()

	// Load configuration
	cfg := env.Config
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err,
					hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	cfg = mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputDir, outputDir := positionalArgs[0], positionalArgs[1]

	if err := copyInput(inputDir, outputDir); err != nil {
		return err
	}

	files, err := discoverDocuments(outputDir, cfg.Documents.Extension, cfg.Documents.OutputExtension)
	if err != nil {
		return fmt.Errorf("discovering documents: %w", err)
	}

	workers := resolveWorkers(cfg.Conversion.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results, batchErr := convertBatch(ctx, env.NewConverter(cfg), files, workers)
	printResults(results, flags.common.quiet, flags.common.verbose, env)

	if batchErr != nil {
		return batchErr
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", gmi2html.ErrConversionCanceled, err)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// mergeFlags returns a copy of cfg with CLI flags applied. CLI values
// override config values; cfg itself is left untouched.
func mergeFlags(flags *convertFlags, cfg *config.Config) *config.Config {
	merged := *cfg
	if flags.workers != workersUnset {
		merged.Conversion.Workers = flags.workers
	}
	return &merged
}

// copyInput copies the input tree to the output directory, which must not
// exist yet.
func copyInput(inputDir, outputDir string) error {
	if err := fileutil.CopyTree(inputDir, outputDir); err != nil {
		return &copyError{err: err}
	}
	return nil
}

// printResults outputs conversion results using the provided writers.
// Fatal errors are left to the caller, which reports them once.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if !r.started() || r.Canceled || r.Fatal {
			continue
		}

		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if r.UnclosedLiteral && !quiet {
			fmt.Fprintf(env.Stderr, "WARNING %s: preformatted block is never closed%s\n",
				r.InputPath, hints.ForUnclosedLiteral())
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		if summary.Canceled > 0 {
			fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed, %d canceled\n",
				summary.Succeeded, summary.Failed, summary.Canceled)
		} else {
			fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
		}
	}

	return summary
}
