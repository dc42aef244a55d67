package lint

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// isEnvFile reports whether a file name looks like an env file.
// Matches `.env`, `.env.local`, `local.env` and similar.
func isEnvFile(name string) bool {
	name = strings.ToLower(filepath.Base(name))
	return name == ".env" || strings.HasPrefix(name, ".env") || strings.HasSuffix(name, ".env")
}

// excluded reports whether a path matches any exclude pattern.
// Patterns match the base name (filepath.Match syntax) or the whole path.
func excluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == path {
			return true
		}
		if ok, err := filepath.Match(pattern, filepath.Base(path)); err == nil && ok {
			return true
		}
	}
	return false
}

// discover expands the invocation inputs into the concrete list of
// files to lint. Explicit file arguments are always taken; directories
// contribute their env files, sorted, walking subdirectories only when
// the run is recursive. A missing input is an operation error.
func (l *Linter) discover(opts *Options) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] && !excluded(path, opts.Excludes) {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, input := range opts.Inputs {
		info, err := l.fs.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", input, err)
		}
		if !info.IsDir() {
			add(input)
			continue
		}

		found, err := l.envFilesIn(input, opts.Recursive)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			add(path)
		}
	}

	slog.Debug("discovered env files", "count", len(files), "recursive", opts.Recursive)
	return files, nil
}

// envFilesIn lists the env files of a directory, sorted by path.
func (l *Linter) envFilesIn(dir string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := afero.Walk(l.fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && isEnvFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	} else {
		entries, err := afero.ReadDir(l.fs, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isEnvFile(entry.Name()) {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
