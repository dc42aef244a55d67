package lint

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// File is an env file split into numbered lines.
type File struct {
	Path  string
	Lines []Line

	// EndsWithNewline records whether the raw content terminated with a
	// line feed. The EndingBlankLine check reads it.
	EndsWithNewline bool
}

// readFile loads and splits an env file.
func readFile(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseFile(path, string(data)), nil
}

// parseFile splits raw content into lines. A trailing line feed does
// not produce an empty final line; it is recorded on the File instead.
func parseFile(path, content string) *File {
	f := &File{
		Path:            path,
		EndsWithNewline: strings.HasSuffix(content, "\n"),
	}
	if content == "" {
		// An empty file has nothing to lint and nothing to terminate.
		f.EndsWithNewline = true
		return f
	}
	raw := strings.TrimSuffix(content, "\n")
	for i, line := range strings.Split(raw, "\n") {
		f.Lines = append(f.Lines, Line{Number: i + 1, Raw: strings.TrimSuffix(line, "\r")})
	}
	return f
}

// keys returns the file's assignment keys in order of appearance.
func (f *File) keys() []string {
	var keys []string
	for _, line := range f.Lines {
		if key := line.Key(); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// content reassembles the file from its lines.
func (f *File) content() string {
	var b strings.Builder
	for i, line := range f.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Raw)
	}
	if f.EndsWithNewline && len(f.Lines) > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}
