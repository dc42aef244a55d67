package lint

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
)

// Compare reads every input file and reports, per file, the keys that
// are present in at least one other file but missing from it. The
// returned sequence is empty when all key sets match.
func (l *Linter) Compare(opts *Options) ([]CompareWarning, error) {
	type fileKeys struct {
		path string
		keys map[string]bool
	}

	var parsed []fileKeys
	var union []string
	inUnion := make(map[string]bool)

	for _, path := range opts.Inputs {
		f, err := readFile(l.fs, path)
		if err != nil {
			return nil, err
		}
		if !opts.Quiet {
			fmt.Fprintf(l.out, "Comparing %s\n", color.New(color.Bold).Sprint(path))
		}

		keys := make(map[string]bool)
		for _, key := range f.keys() {
			keys[key] = true
			if !inUnion[key] {
				inUnion[key] = true
				union = append(union, key)
			}
		}
		parsed = append(parsed, fileKeys{path: path, keys: keys})
	}

	var warnings []CompareWarning
	for _, fk := range parsed {
		var missing []string
		for _, key := range union {
			if !fk.keys[key] {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			warnings = append(warnings, CompareWarning{Path: fk.path, Missing: missing})
		}
	}

	slog.Debug("comparison finished", "files", len(parsed), "mismatched", len(warnings))

	for _, w := range warnings {
		fmt.Fprintln(l.out, w)
	}
	return warnings, nil
}
