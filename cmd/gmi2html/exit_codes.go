package main

import (
	"errors"
	"os"

	"github.com/alnah/go-gmi2html/internal/config"
	"github.com/alnah/go-gmi2html/internal/fileutil"
	"github.com/alnah/go-gmi2html/internal/hints"
)

// Exit codes for gmi2html CLI.
// Every failure class shares exit code 1; the class only changes the message.
const (
	ExitSuccess = 0 // Site converted (per-document read failures included)
	ExitFailure = 1 // Usage, copy, config or unexpected error
)

// errorClass selects how an error returned by runConvert is reported.
type errorClass int

const (
	errorClassNone       errorClass = iota
	errorClassCopy                  // Copying the input tree failed
	errorClassConfig                // Config file missing, malformed or invalid
	errorClassUnexpected            // Anything else
)

// classifyError returns the reporting class for err.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func classifyError(err error) errorClass {
	if err == nil {
		return errorClassNone
	}

	if errors.Is(err, ErrCopyFailed) {
		return errorClassCopy
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) {
		return errorClassConfig
	}

	return errorClassUnexpected
}

// hintFor returns an actionable hint for err, or "" when none applies.
// Config-not-found hints depend on the searched name and are attached by
// runConvert instead.
func hintFor(err error) string {
	switch {
	case errors.Is(err, fileutil.ErrDestinationExists):
		return hints.ForOutputExists()
	case errors.Is(err, fileutil.ErrDestinationInSource):
		return hints.ForOutputInsideInput()
	case errors.Is(err, os.ErrPermission):
		return hints.ForPermission()
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrConfigParse):
		return hints.ForInvalidConfig()
	}
	return ""
}
