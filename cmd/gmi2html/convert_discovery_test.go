package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestDiscoverDocuments - Finding documents in the copied tree
// ---------------------------------------------------------------------------

func TestDiscoverDocuments(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"index.gmi":           "# Home\n",
		"about.gmi":           "About\n",
		"image.png":           "\x89PNG",
		"notes.GMI":           "upper case extension\n",
		"archive/2024.gmi":    "2024\n",
		"archive/old.gmi.bak": "backup\n",
		"gmi":                 "no extension\n",
	})

	files, err := discoverDocuments(root, ".gmi", ".html")
	if err != nil {
		t.Fatalf("discoverDocuments() error = %v", err)
	}

	want := []FileToConvert{
		{InputPath: filepath.Join(root, "about.gmi"), OutputPath: filepath.Join(root, "about.html")},
		{InputPath: filepath.Join(root, "archive", "2024.gmi"), OutputPath: filepath.Join(root, "archive", "2024.html")},
		{InputPath: filepath.Join(root, "index.gmi"), OutputPath: filepath.Join(root, "index.html")},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("discoverDocuments() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverDocuments_CustomExtensions(t *testing.T) {
	t.Parallel()

	root := setupTestDir(t, map[string]string{
		"page.gem": "text\n",
		"page.gmi": "text\n",
	})

	files, err := discoverDocuments(root, ".gem", ".htm")
	if err != nil {
		t.Fatalf("discoverDocuments() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1: %v", len(files), files)
	}
	if got, want := files[0].OutputPath, filepath.Join(root, "page.htm"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestDiscoverDocuments_SkipsDirectoriesNamedLikeDocuments(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "dir.gmi"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	files, err := discoverDocuments(root, ".gmi", ".html")
	if err != nil {
		t.Fatalf("discoverDocuments() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %v, want no documents", files)
	}
}

func TestDiscoverDocuments_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := discoverDocuments(filepath.Join(t.TempDir(), "missing"), ".gmi", ".html")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want not-exist", err)
	}
}
