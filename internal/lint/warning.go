package lint

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Warning is a single check finding for one line of one file.
type Warning struct {
	Check   string
	Path    string
	Line    int
	Message string
}

// String renders the warning the way it is printed to the user.
// Coloring degrades to plain text when color output is disabled.
func (w Warning) String() string {
	location := color.New(color.Bold).Sprintf("%s:%d", w.Path, w.Line)
	name := color.New(color.FgRed).Sprint(w.Check)
	return fmt.Sprintf("%s %s: %s", location, name, w.Message)
}

// CompareWarning reports the keys one compared file is missing
// relative to the union of keys across all compared files.
type CompareWarning struct {
	Path    string
	Missing []string
}

// String renders the comparison warning.
func (w CompareWarning) String() string {
	path := color.New(color.Bold).Sprint(w.Path)
	return fmt.Sprintf("%s is missing keys: %s", path, strings.Join(w.Missing, ", "))
}
