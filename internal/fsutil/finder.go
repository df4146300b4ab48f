// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFilesByExtension recursively searches the given root path for all files
// ending with the specified extension, in lexical walk order. A non-empty
// glob pattern further filters matches against their slash-separated paths
// relative to root.
func FindFilesByExtension(rootPath, extension, glob string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), extension) {
			return nil
		}
		if glob != "" {
			rel, err := filepath.Rel(rootPath, path)
			if err != nil {
				return err
			}
			ok, err := doublestar.Match(glob, filepath.ToSlash(rel))
			if err != nil {
				return fmt.Errorf("invalid glob pattern %q: %w", glob, err)
			}
			if !ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
