// Package fileutil provides file, path and directory-tree helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// dirOwnerWrite is added to directories while their contents are copied.
const dirOwnerWrite fs.FileMode = 0o700

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionNoDot         = errors.New("extension must start with a dot")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrDestinationExists      = errors.New("destination already exists")
	ErrSourceNotDirectory     = errors.New("source is not a directory")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrDestinationInSource    = errors.New("destination is inside the source directory")
)

// ValidateExtension checks that ext is a dotted file extension such as
// ".gmi", safe to append to a file name.
func ValidateExtension(ext string) error {
	if ext == "" {
		return ErrExtensionEmpty
	}
	if !strings.HasPrefix(ext, ".") || ext == "." {
		return fmt.Errorf("%w: %q", ErrExtensionNoDot, ext)
	}
	if strings.ContainsAny(ext, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// HasExtension reports whether path ends in ext. The comparison is
// case-sensitive, so "INDEX.GMI" does not match ".gmi".
func HasExtension(path, ext string) bool {
	return filepath.Ext(path) == ext
}

// ReplaceExt swaps the extension of path for ext.
// A path without an extension gets ext appended.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/gmi2html/site.yaml" -> true (absolute)
//   - "C:\config\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// CopyTree recursively copies the directory src to dst.
//
// dst must not exist and must not lie inside src; it is created with
// src's permissions. An existing dst fails with ErrDestinationExists
// before anything is written. Regular files are copied byte for byte with
// their permission bits. Symbolic links are followed: a link to a regular
// file is copied as a regular file, a link to a directory as a directory.
// Other file types (devices, sockets, pipes) fail with
// ErrUnsupportedFileType.
//
// On failure the partially copied tree is left in place.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: ErrSourceNotDirectory}
	}

	if _, err := os.Lstat(dst); err == nil {
		return &fs.PathError{Op: "copy", Path: dst, Err: ErrDestinationExists}
	}

	inside, err := isWithin(src, dst)
	if err != nil {
		return err
	}
	if inside {
		return &fs.PathError{Op: "copy", Path: dst, Err: ErrDestinationInSource}
	}

	perm := info.Mode().Perm()
	if err := os.Mkdir(dst, perm|dirOwnerWrite); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &fs.PathError{Op: "copy", Path: dst, Err: ErrDestinationExists}
		}
		return err
	}

	return fillDir(src, dst, perm)
}

// isWithin reports whether path is dir itself or lies below it.
func isWithin(dir, path string) (bool, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}

// fillDir copies the contents of src into the freshly created dst, then
// gives dst its final permissions. Directories are created owner-writable
// so read-only sources can still be copied.
func fillDir(src, dst string, perm fs.FileMode) error {
	if err := copyDirContents(src, dst); err != nil {
		return err
	}
	if perm&dirOwnerWrite != dirOwnerWrite {
		return os.Chmod(dst, perm)
	}
	return nil
}

// copyDirContents copies the entries of src into the existing directory dst.
func copyDirContents(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		// Stat follows symlinks.
		info, err := os.Stat(from)
		if err != nil {
			return err
		}

		switch {
		case info.IsDir():
			perm := info.Mode().Perm()
			if err := os.Mkdir(to, perm|dirOwnerWrite); err != nil {
				return err
			}
			if err := fillDir(from, to, perm); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := CopyFile(from, to, info.Mode().Perm()); err != nil {
				return err
			}
		default:
			return &fs.PathError{Op: "copy", Path: from, Err: ErrUnsupportedFileType}
		}
	}

	return nil
}

// CopyFile copies the regular file src to dst, creating dst with perm.
// The umask does not apply: dst ends up with exactly perm.
// An existing dst is not overwritten.
func CopyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := os.Open(src) // #nosec G304 -- path comes from a directory walk
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm) // #nosec G304
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Chmod(perm)
}
