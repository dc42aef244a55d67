package lint

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

// Fix lints every discovered file and rewrites it with the fixable
// warnings resolved. Unless opts.NoBackup is set, the original content
// is preserved next to the file before it is rewritten.
func (l *Linter) Fix(opts *Options) error {
	files, err := l.discover(opts)
	if err != nil {
		return err
	}

	for i, path := range files {
		f, err := readFile(l.fs, path)
		if err != nil {
			return err
		}

		warnings := runChecks(f, opts.Skips)

		if !opts.Quiet {
			if i > 0 {
				fmt.Fprintln(l.out)
			}
			fmt.Fprintf(l.out, "Fixing %s\n", color.New(color.Bold).Sprint(path))
		}
		if len(warnings) == 0 {
			continue
		}

		if !opts.NoBackup {
			backup, err := l.backupFile(path)
			if err != nil {
				return err
			}
			if !opts.Quiet {
				fmt.Fprintf(l.out, "Original file was backed up to: %s\n", backup)
			}
		}

		fixed, unfixed := applyFixes(f, warnings)

		if err := afero.WriteFile(l.fs, path, []byte(f.content()), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		slog.Debug("file fixed", "path", path, "fixed", fixed, "unfixed", len(unfixed))

		for _, w := range warnings {
			fmt.Fprintln(l.out, w)
		}
		if !opts.Quiet {
			fmt.Fprintf(l.out, "Fixed %d %s\n", fixed, pluralize("warning", fixed))
			for _, w := range unfixed {
				fmt.Fprintf(l.out, "Unfixed: %s\n", w)
			}
		}
	}

	return nil
}

// backupFile copies the original file content to a timestamped sibling.
func (l *Linter) backupFile(path string) (string, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s for backup: %w", path, err)
	}
	backup := fmt.Sprintf("%s.%d.bak", path, time.Now().Unix())
	if err := afero.WriteFile(l.fs, backup, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backup, err)
	}
	return backup, nil
}

// applyFixes mutates the file in place to resolve the given warnings.
// It returns how many were fixed and which ones could not be.
func applyFixes(f *File, warnings []Warning) (fixed int, unfixed []Warning) {
	var extraBlanks []int
	sortGroups := false

	for _, w := range warnings {
		idx := w.Line - 1
		switch w.Check {
		case CheckEndingBlankLine:
			f.EndsWithNewline = true
		case CheckExtraBlankLine:
			extraBlanks = append(extraBlanks, idx)
		case CheckUnorderedKey:
			sortGroups = true
		case CheckDuplicatedKey:
			f.Lines[idx].Raw = "# " + f.Lines[idx].Raw
		case CheckKeyWithoutValue:
			f.Lines[idx].Raw += "="
		case CheckLowercaseKey:
			f.Lines[idx].Raw = rewriteKey(f.Lines[idx].Raw, strings.ToUpper)
		case CheckLeadingCharacter:
			f.Lines[idx].Raw = rewriteKey(f.Lines[idx].Raw, trimInvalidLeading)
		case CheckIncorrectDelimiter:
			f.Lines[idx].Raw = rewriteKey(f.Lines[idx].Raw, underscoreDelimiters)
		case CheckQuoteCharacter:
			f.Lines[idx].Raw = stripQuotes(f.Lines[idx].Raw)
		case CheckSpaceCharacter:
			f.Lines[idx].Raw = tightenDelimiter(f.Lines[idx].Raw)
		case CheckTrailingWhitespace:
			f.Lines[idx].Raw = strings.TrimRight(f.Lines[idx].Raw, " \t")
		default:
			// SubstitutionKey has no mechanical fix.
			unfixed = append(unfixed, w)
			continue
		}
		fixed++
	}

	if sortGroups {
		sortKeyGroups(f)
	}
	removeLines(f, extraBlanks)
	renumber(f)
	return fixed, unfixed
}

// rewriteKey applies fn to the key part of an assignment line, keeping
// any `export ` prefix and everything from the equal sign on.
func rewriteKey(raw string, fn func(string) string) string {
	prefix := ""
	rest := raw
	if strings.HasPrefix(strings.TrimLeft(raw, " \t"), exportPrefix) {
		i := strings.Index(raw, exportPrefix)
		prefix = raw[:i+len(exportPrefix)]
		rest = raw[i+len(exportPrefix):]
	}
	if i := strings.IndexByte(rest, '='); i >= 0 {
		return prefix + fn(rest[:i]) + rest[i:]
	}
	return prefix + fn(rest)
}

func trimInvalidLeading(key string) string {
	return strings.TrimLeftFunc(key, func(r rune) bool {
		return !(isLetter(r) || r == '_')
	})
}

func underscoreDelimiters(key string) string {
	return strings.Map(func(r rune) rune {
		if isKeyRune(r) {
			return r
		}
		return '_'
	}, key)
}

// stripQuotes removes quote characters from the value part of a line.
func stripQuotes(raw string) string {
	i := strings.IndexByte(raw, '=')
	if i < 0 {
		return raw
	}
	value := strings.NewReplacer(`"`, "", "'", "").Replace(raw[i+1:])
	return raw[:i+1] + value
}

// tightenDelimiter removes the spaces around the first equal sign.
func tightenDelimiter(raw string) string {
	i := strings.IndexByte(raw, '=')
	if i < 0 {
		return raw
	}
	return strings.TrimRight(raw[:i], " \t") + "=" + strings.TrimLeft(raw[i+1:], " \t")
}

// sortKeyGroups reorders assignment lines by key within each group of
// lines separated by blank lines. Comments keep their positions.
func sortKeyGroups(f *File) {
	start := 0
	for i := 0; i <= len(f.Lines); i++ {
		if i < len(f.Lines) && !f.Lines[i].IsBlank() {
			continue
		}
		sortKeyRange(f, start, i)
		start = i + 1
	}
}

func sortKeyRange(f *File, start, end int) {
	var indices []int
	for i := start; i < end; i++ {
		if f.Lines[i].Key() != "" {
			indices = append(indices, i)
		}
	}
	contents := make([]string, 0, len(indices))
	for _, i := range indices {
		contents = append(contents, f.Lines[i].Raw)
	}
	sort.SliceStable(contents, func(a, b int) bool {
		return Line{Raw: contents[a]}.Key() < Line{Raw: contents[b]}.Key()
	})
	for n, i := range indices {
		f.Lines[i].Raw = contents[n]
	}
}

func removeLines(f *File, indices []int) {
	if len(indices) == 0 {
		return
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	for _, i := range indices {
		f.Lines = append(f.Lines[:i], f.Lines[i+1:]...)
	}
}

func renumber(f *File) {
	for i := range f.Lines {
		f.Lines[i].Number = i + 1
	}
}
