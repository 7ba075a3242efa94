package main

import (
	"io"
	"os"
	"time"

	gmi2html "github.com/alnah/go-gmi2html"
	"github.com/alnah/go-gmi2html/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and the document converter.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Config       *config.Config // Used when --config is not given
	NewConverter func(cfg *config.Config) DocumentConverter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Config:       config.DefaultConfig(),
		NewConverter: newConverter,
	}
}

// newConverter builds the library converter for cfg.
func newConverter(cfg *config.Config) DocumentConverter {
	return gmi2html.NewConverter(
		gmi2html.WithLineEndingNormalization(cfg.Conversion.NormalizeLineEndings),
	)
}
