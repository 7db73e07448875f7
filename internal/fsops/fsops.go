// Package fsops provides the filesystem operations exposed as agent tools:
// list, copy, move and delete files, create and delete folders. All
// functions are direct pass-throughs to os primitives with no policy of
// their own.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// List returns the names of all entries in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// CopyFile copies src to dst and returns the final destination path. When
// dst is an existing directory the source base name is appended, matching
// shell cp semantics.
func CopyFile(src, dst string) (string, error) {
	dest := resolveDest(src, dst)

	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("copy %s: %w", src, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("copy %s: source is a directory", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("copy %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("copy to %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("copy to %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("copy to %s: %w", dest, err)
	}
	return dest, nil
}

// MoveFile moves src to dst and returns the final destination path.
// Directory destinations behave as in CopyFile.
func MoveFile(src, dst string) (string, error) {
	dest := resolveDest(src, dst)
	if err := os.Rename(src, dest); err == nil {
		return dest, nil
	}
	// Rename fails across filesystems; fall back to copy and delete.
	if _, err := CopyFile(src, dest); err != nil {
		return "", fmt.Errorf("move %s: %w", src, err)
	}
	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("move %s: %w", src, err)
	}
	return dest, nil
}

// DeleteFile removes a single file.
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// CreateDir creates a folder along with any missing parents.
func CreateDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create folder %s: %w", path, err)
	}
	return nil
}

// DeleteDir removes a folder and everything in it.
func DeleteDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("delete folder %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("delete folder %s: not a directory", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("delete folder %s: %w", path, err)
	}
	return nil
}

func resolveDest(src, dst string) string {
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, filepath.Base(src))
	}
	return dst
}
