package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// GatherFiles expands roots into absolute file paths. Regular files are taken as they
// are; directories contribute the files directly inside them whose extension is one
// of extensions, in lexical order.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	hasExtension := func(name string) bool {
		return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
	}

	appendAbsPath := func(paths []string, path string) ([]string, error) {
		path, err := filepath.Abs(path)
		if err != nil {
			return paths, fmt.Errorf("absolute path: %w", err)
		}
		return append(paths, path), nil
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			paths, err = appendAbsPath(paths, root)
			if err != nil {
				return nil, err
			}

		} else if fi.Mode().IsDir() {
			// os.ReadDir sorts by file name.
			files, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			for _, fi := range files {
				if !fi.Type().IsRegular() || !hasExtension(fi.Name()) {
					continue
				}

				paths, err = appendAbsPath(paths, filepath.Join(root, fi.Name()))
				if err != nil {
					return nil, err
				}
			}
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}
