// Package lint implements the linting engine behind the dotenv-linter
// commands: discovering env files, running checks, fixing warnings in
// place and comparing key sets across files.
package lint

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// Linter runs the lint operations against a filesystem, reporting to a
// single output writer.
type Linter struct {
	fs  afero.Fs
	out io.Writer
}

// New creates a Linter over the given filesystem and output writer.
func New(fs afero.Fs, out io.Writer) *Linter {
	return &Linter{fs: fs, out: out}
}

// CheckNames returns the names of all available checks in the stable
// order the list command prints them. It touches no files.
func (l *Linter) CheckNames() []string {
	return checkNames()
}

// Check lints every discovered file and returns the total number of
// warnings found.
func (l *Linter) Check(opts *Options) (int, error) {
	files, err := l.discover(opts)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, path := range files {
		f, err := readFile(l.fs, path)
		if err != nil {
			return 0, err
		}

		warnings := runChecks(f, opts.Skips)
		total += len(warnings)

		slog.Debug("file checked", "path", path, "warnings", len(warnings))

		if !opts.Quiet {
			if i > 0 {
				fmt.Fprintln(l.out)
			}
			fmt.Fprintf(l.out, "Checking %s\n", color.New(color.Bold).Sprint(path))
		}
		for _, w := range warnings {
			fmt.Fprintln(l.out, w)
		}
	}

	if !opts.Quiet {
		if total == 0 {
			fmt.Fprintln(l.out, "\nNo problems found")
		} else {
			fmt.Fprintf(l.out, "\nFound %d %s\n", total, pluralize("problem", total))
		}
	}
	return total, nil
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
