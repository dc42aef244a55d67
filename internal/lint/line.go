package lint

import "strings"

// exportPrefix is stripped before key extraction so `export FOO=1`
// style lines lint the same as plain assignments.
const exportPrefix = "export "

// Line is a single numbered line of an env file.
type Line struct {
	Number int
	Raw    string
}

// IsBlank reports whether the line contains only whitespace.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Raw) == ""
}

// IsComment reports whether the line is a comment.
func (l Line) IsComment() bool {
	return strings.HasPrefix(strings.TrimSpace(l.Raw), "#")
}

// HasDelimiter reports whether the line contains an equal sign.
func (l Line) HasDelimiter() bool {
	return strings.ContainsRune(l.Raw, '=')
}

// Key returns the key part of an assignment line, with any leading
// whitespace and `export ` prefix removed. It returns "" for blank and
// comment lines.
func (l Line) Key() string {
	if l.IsBlank() || l.IsComment() {
		return ""
	}
	s := strings.TrimLeft(l.Raw, " \t")
	s = strings.TrimPrefix(s, exportPrefix)
	if i := strings.IndexByte(s, '='); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Value returns the value part of an assignment line, with surrounding
// whitespace removed. It returns "" when the line has no equal sign.
func (l Line) Value() string {
	i := strings.IndexByte(l.Raw, '=')
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(l.Raw[i+1:])
}
