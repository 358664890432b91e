// Package scanner finds candidate files in a directory tree based on their
// extensions, with glob include/exclude filtering.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Options holds the parameters for a directory scan.
type Options struct {
	// Root is the directory to scan.
	Root string

	// Extensions to include, with the leading dot (e.g. ".csv", ".html").
	Extensions []string

	// Include patterns (glob, matched against root-relative slash paths).
	// If set, only matching files are kept.
	Include []string

	// Exclude patterns (glob). Matching files are removed.
	Exclude []string
}

// FindFiles walks a directory and returns all files matching the given
// extensions. Hidden directories (starting with .) like .git are skipped.
func FindFiles(root string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, nil
	}

	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if !d.IsDir() && wanted[strings.ToLower(filepath.Ext(d.Name()))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// FindFilesWithOptions scans for files and applies include/exclude
// filtering. This is the entry point used by the directory scan command.
func FindFilesWithOptions(opts Options) ([]string, error) {
	files, err := FindFiles(opts.Root, opts.Extensions)
	if err != nil {
		return nil, err
	}

	if len(opts.Include) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Include, true)
		if err != nil {
			return nil, err
		}
	}
	if len(opts.Exclude) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Exclude, false)
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// filterByGlobPatterns keeps files matching any pattern (include=true) or
// removes them (include=false). Matching is done on root-relative paths with
// forward slashes so patterns behave the same on every platform.
func filterByGlobPatterns(files []string, root string, patterns []string, include bool) ([]string, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}

	result := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			rel = f
		}
		rel = filepath.ToSlash(rel)

		matches := matchesAnyGlob(rel, compiled)
		if include == matches {
			result = append(result, f)
		}
	}
	return result, nil
}

func matchesAnyGlob(path string, patterns []glob.Glob) bool {
	for _, g := range patterns {
		if g.Match(path) {
			return true
		}
	}
	return false
}
