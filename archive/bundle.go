// Package archive reads settings documents packed into zip bundles, such as
// debug reports or collections shared between users.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// IsBundle reports whether file name looks like a zip bundle.
func IsBundle(name string) bool {
	return strings.EqualFold(path.Ext(name), ".zip")
}

// WalkFunc is called for each matching entry with its name and content.
// Returning error stops the walk.
type WalkFunc func(name string, data []byte) error

// Walk calls walkFn for every regular file in bundle for which match returns
// true, in archive order. Entries with absolute paths or ".." components
// make whole bundle invalid.
func Walk(bundle string, match func(name string) bool, walkFn WalkFunc) error {
	r, err := zip.OpenReader(bundle)
	if err != nil {
		return fmt.Errorf("unable to open bundle '%s': %w", bundle, err)
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !match(name) {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return fmt.Errorf("zip entry %q: %w", name, err)
		}
		if err := walkFn(name, data); err != nil {
			return err
		}
	}
	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// isSafePath returns false for absolute paths and those containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
