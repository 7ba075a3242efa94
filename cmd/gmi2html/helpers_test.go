package main

// Notes:
// - This file contains test helpers used across the cmd tests.
// - These are not functions under test themselves, but supporting infrastructure.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	gmi2html "github.com/alnah/go-gmi2html"
	"github.com/alnah/go-gmi2html/internal/config"
)

// ---------------------------------------------------------------------------
// Fixtures - Directory trees on disk
// ---------------------------------------------------------------------------

// setupTestDir writes files (slash-separated relative path -> content) under
// a fresh temporary directory and returns it.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return root
}

// readTree returns every regular file under root keyed by slash-separated
// relative path.
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("reading tree %s: %v", root, err)
	}
	return tree
}

// ---------------------------------------------------------------------------
// Environment - Captured output
// ---------------------------------------------------------------------------

// testEnv returns an Environment writing into buffers, with a fixed clock
// and the real converter.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return &Environment{
		Now:          func() time.Time { return fixed },
		Stdout:       stdout,
		Stderr:       stderr,
		Config:       config.DefaultConfig(),
		NewConverter: newConverter,
	}, stdout, stderr
}

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// recordingConverter records every document it is given and returns a
// fixed result.
type recordingConverter struct {
	mu     sync.Mutex
	inputs []gmi2html.Input
	html   string
	err    error
}

func (m *recordingConverter) Convert(_ context.Context, in gmi2html.Input) (*gmi2html.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &gmi2html.ConvertResult{HTML: []byte(m.html)}, nil
}

func (m *recordingConverter) names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.inputs))
	for _, in := range m.inputs {
		names = append(names, in.Name)
	}
	return names
}

// skipIfRoot skips tests relying on permission denial, which root bypasses.
func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed when running as root")
	}
}
