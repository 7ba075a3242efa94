package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/alnah/go-gmi2html/internal/fileutil"
)

// FileToConvert represents a single document to process.
type FileToConvert struct {
	InputPath  string // Document inside the output tree
	OutputPath string // Same path with the output extension
}

// discoverDocuments walks root and collects every regular file ending in
// ext, in lexical order. The list is complete before any conversion
// starts, so files written during conversion are never picked up.
func discoverDocuments(root, ext, outputExt string) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if !d.Type().IsRegular() || !fileutil.HasExtension(path, ext) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: fileutil.ReplaceExt(path, outputExt),
		})
		return nil
	})
	return files, err
}
