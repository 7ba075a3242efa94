package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	gmi2html "github.com/alnah/go-gmi2html"
)

// Sentinel errors for batch operations.
var (
	ErrReadDocument   = errors.New("failed to read document")
	ErrWriteDocument  = errors.New("failed to write document")
	ErrRemoveDocument = errors.New("failed to remove source document")
)

// DocumentConverter is the interface for the conversion service.
type DocumentConverter interface {
	Convert(ctx context.Context, input gmi2html.Input) (*gmi2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ DocumentConverter = (*gmi2html.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath       string
	OutputPath      string
	Err             error
	Fatal           bool // Err leaves the output tree inconsistent; the batch stops
	Canceled        bool // Never started because the batch was stopped
	UnclosedLiteral bool
	Duration        time.Duration
}

// started reports whether the document was picked up by a worker.
func (r ConversionResult) started() bool {
	return r.InputPath != ""
}

// convertBatch converts files with up to workers documents in flight.
// Results are indexed like files. The first fatal error cancels the batch:
// documents not yet started are marked canceled and the error is returned.
// Non-fatal failures are only recorded in their result.
func convertBatch(ctx context.Context, conv DocumentConverter, files []FileToConvert, workers int) ([]ConversionResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	g, gctx := errgroup.WithContext(ctx)
	for range concurrency {
		g.Go(func() error {
			for idx := range jobs {
				if err := gctx.Err(); err != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        err,
						Canceled:   true,
					}
					continue
				}
				results[idx] = convertDocument(gctx, conv, files[idx])
				if results[idx].Fatal {
					return results[idx].Err
				}
			}
			return nil
		})
	}

	return results, g.Wait()
}

// convertDocument reads one document, writes its HTML next to it with the
// same permission bits, then removes the source.
func convertDocument(ctx context.Context, conv DocumentConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error, fatal bool) ConversionResult {
		result.Err = err
		result.Fatal = fatal
		result.Duration = time.Since(start)
		return result
	}

	info, err := os.Stat(f.InputPath)
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadDocument, err), false)
	}
	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadDocument, err), false)
	}

	res, err := conv.Convert(ctx, gmi2html.Input{Text: string(content), Name: f.InputPath})
	if err != nil {
		result.Canceled = errors.Is(err, gmi2html.ErrConversionCanceled)
		return finish(err, false)
	}
	result.UnclosedLiteral = res.UnclosedLiteral

	perm := info.Mode().Perm()
	// #nosec G306 -- converted pages keep the source permissions
	if err := os.WriteFile(f.OutputPath, res.HTML, perm); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrWriteDocument, err), true)
	}
	if err := os.Chmod(f.OutputPath, perm); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrWriteDocument, err), true)
	}
	if err := os.Remove(f.InputPath); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrRemoveDocument, err), true)
	}

	return finish(nil, false)
}

// ResultSummary holds the count of succeeded, failed and canceled conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Canceled  int
}

// countResults tallies conversions. Documents never started are ignored.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case !r.started():
		case r.Canceled:
			summary.Canceled++
		case r.Err != nil:
			summary.Failed++
		default:
			summary.Succeeded++
		}
	}
	return summary
}
