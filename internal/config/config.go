// Package config loads the optional YAML configuration for gmi2html.
//
// Every setting has a default matching the plain command-line behavior, so
// a configuration file is never required.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-gmi2html/internal/fileutil"
	"github.com/alnah/go-gmi2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Defaults and limits.
const (
	DefaultExtension       = ".gmi"
	DefaultOutputExtension = ".html"
	DefaultWorkers         = 1  // Sequential, one document at a time
	MaxWorkers             = 32 // Upper bound for --workers and conversion.workers

	// AppDirName is the directory searched under the user config dir.
	AppDirName = "go-gmi2html"
)

// Config holds all configuration for a site conversion.
type Config struct {
	Documents  DocumentsConfig  `yaml:"documents"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// DocumentsConfig selects which files are converted and what they become.
type DocumentsConfig struct {
	Extension       string `yaml:"extension"`       // Source documents (default ".gmi")
	OutputExtension string `yaml:"outputExtension"` // Converted documents (default ".html")
}

// ConversionConfig tunes the conversion itself.
type ConversionConfig struct {
	Workers              int  `yaml:"workers"`              // 0 = auto, 1 = sequential
	NormalizeLineEndings bool `yaml:"normalizeLineEndings"` // Rewrite \r\n and \r to \n
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Documents: DocumentsConfig{
			Extension:       DefaultExtension,
			OutputExtension: DefaultOutputExtension,
		},
		Conversion: ConversionConfig{
			Workers:              DefaultWorkers,
			NormalizeLineEndings: true,
		},
	}
}

// Validate checks that extensions are usable and distinct and that the
// worker count is in range.
func (c *Config) Validate() error {
	if err := fileutil.ValidateExtension(c.Documents.Extension); err != nil {
		return fmt.Errorf("%w: documents.extension: %w", ErrInvalidConfig, err)
	}
	if err := fileutil.ValidateExtension(c.Documents.OutputExtension); err != nil {
		return fmt.Errorf("%w: documents.outputExtension: %w", ErrInvalidConfig, err)
	}
	if c.Documents.Extension == c.Documents.OutputExtension {
		return fmt.Errorf("%w: documents.outputExtension must differ from documents.extension (%q)",
			ErrInvalidConfig, c.Documents.Extension)
	}
	if c.Conversion.Workers < 0 || c.Conversion.Workers > MaxWorkers {
		return fmt.Errorf("%w: conversion.workers: must be between 0 and %d, got %d",
			ErrInvalidConfig, MaxWorkers, c.Conversion.Workers)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their defaults; an empty file yields
// DefaultConfig. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, yamlutil.ErrNilData):
			// Empty file: defaults apply.
		default:
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// the current directory, then the user config directory, each with
// .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
