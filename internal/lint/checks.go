package lint

import (
	"fmt"
	"strings"
)

// Check names, in the stable order the list command prints them.
const (
	CheckDuplicatedKey      = "DuplicatedKey"
	CheckEndingBlankLine    = "EndingBlankLine"
	CheckExtraBlankLine     = "ExtraBlankLine"
	CheckIncorrectDelimiter = "IncorrectDelimiter"
	CheckKeyWithoutValue    = "KeyWithoutValue"
	CheckLeadingCharacter   = "LeadingCharacter"
	CheckLowercaseKey       = "LowercaseKey"
	CheckQuoteCharacter     = "QuoteCharacter"
	CheckSpaceCharacter     = "SpaceCharacter"
	CheckSubstitutionKey    = "SubstitutionKey"
	CheckTrailingWhitespace = "TrailingWhitespace"
	CheckUnorderedKey       = "UnorderedKey"
)

// check inspects a whole file and reports zero or more warnings.
type check interface {
	Name() string
	Run(f *File) []Warning
}

// allChecks returns the full check set in registry order.
func allChecks() []check {
	return []check{
		duplicatedKeyCheck{},
		endingBlankLineCheck{},
		extraBlankLineCheck{},
		incorrectDelimiterCheck{},
		keyWithoutValueCheck{},
		leadingCharacterCheck{},
		lowercaseKeyCheck{},
		quoteCharacterCheck{},
		spaceCharacterCheck{},
		substitutionKeyCheck{},
		trailingWhitespaceCheck{},
		unorderedKeyCheck{},
	}
}

// checkNames returns the registry names in their stable order.
func checkNames() []string {
	checks := allChecks()
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name())
	}
	return names
}

// runChecks runs every non-skipped check against the file.
// Warnings come back grouped by check, each group in line order.
func runChecks(f *File, skips []string) []Warning {
	skipped := make(map[string]bool, len(skips))
	for _, name := range skips {
		skipped[name] = true
	}

	var warnings []Warning
	for _, c := range allChecks() {
		if skipped[c.Name()] {
			continue
		}
		warnings = append(warnings, c.Run(f)...)
	}
	return warnings
}

func warningAt(f *File, name string, line int, message string) Warning {
	return Warning{Check: name, Path: f.Path, Line: line, Message: message}
}

// assignmentLines yields the lines that carry a key.
func assignmentLines(f *File) []Line {
	var lines []Line
	for _, line := range f.Lines {
		if line.Key() != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

type duplicatedKeyCheck struct{}

func (duplicatedKeyCheck) Name() string { return CheckDuplicatedKey }

func (duplicatedKeyCheck) Run(f *File) []Warning {
	var warnings []Warning
	seen := make(map[string]bool)
	for _, line := range assignmentLines(f) {
		key := line.Key()
		if seen[key] {
			warnings = append(warnings, warningAt(f, CheckDuplicatedKey, line.Number,
				fmt.Sprintf("The %s key is duplicated", key)))
			continue
		}
		seen[key] = true
	}
	return warnings
}

type endingBlankLineCheck struct{}

func (endingBlankLineCheck) Name() string { return CheckEndingBlankLine }

func (endingBlankLineCheck) Run(f *File) []Warning {
	if f.EndsWithNewline {
		return nil
	}
	return []Warning{warningAt(f, CheckEndingBlankLine, len(f.Lines),
		"No blank line at the end of the file")}
}

type extraBlankLineCheck struct{}

func (extraBlankLineCheck) Name() string { return CheckExtraBlankLine }

func (extraBlankLineCheck) Run(f *File) []Warning {
	var warnings []Warning
	blanks := 0
	for _, line := range f.Lines {
		if !line.IsBlank() {
			blanks = 0
			continue
		}
		blanks++
		if blanks > 1 {
			warnings = append(warnings, warningAt(f, CheckExtraBlankLine, line.Number,
				"Extra blank line detected"))
		}
	}
	return warnings
}

type incorrectDelimiterCheck struct{}

func (incorrectDelimiterCheck) Name() string { return CheckIncorrectDelimiter }

func (incorrectDelimiterCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range assignmentLines(f) {
		key := line.Key()
		// The first character is LeadingCharacter territory.
		for _, r := range key[1:] {
			if !isKeyRune(r) {
				warnings = append(warnings, warningAt(f, CheckIncorrectDelimiter, line.Number,
					fmt.Sprintf("The %s key has incorrect delimiter", key)))
				break
			}
		}
	}
	return warnings
}

type keyWithoutValueCheck struct{}

func (keyWithoutValueCheck) Name() string { return CheckKeyWithoutValue }

func (keyWithoutValueCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range f.Lines {
		if line.IsBlank() || line.IsComment() || line.HasDelimiter() {
			continue
		}
		warnings = append(warnings, warningAt(f, CheckKeyWithoutValue, line.Number,
			fmt.Sprintf("The %s key should be with a value or have an equal sign", line.Key())))
	}
	return warnings
}

type leadingCharacterCheck struct{}

func (leadingCharacterCheck) Name() string { return CheckLeadingCharacter }

func (leadingCharacterCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range assignmentLines(f) {
		first := rune(line.Key()[0])
		if isLetter(first) || first == '_' {
			continue
		}
		warnings = append(warnings, warningAt(f, CheckLeadingCharacter, line.Number,
			"Invalid leading character detected"))
	}
	return warnings
}

type lowercaseKeyCheck struct{}

func (lowercaseKeyCheck) Name() string { return CheckLowercaseKey }

func (lowercaseKeyCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range assignmentLines(f) {
		key := line.Key()
		if strings.ToUpper(key) == key {
			continue
		}
		warnings = append(warnings, warningAt(f, CheckLowercaseKey, line.Number,
			fmt.Sprintf("The %s key should be in uppercase", key)))
	}
	return warnings
}

type quoteCharacterCheck struct{}

func (quoteCharacterCheck) Name() string { return CheckQuoteCharacter }

func (quoteCharacterCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range assignmentLines(f) {
		if !strings.ContainsAny(line.Value(), `"'`) {
			continue
		}
		warnings = append(warnings, warningAt(f, CheckQuoteCharacter, line.Number,
			`The value has quote characters (", ')`))
	}
	return warnings
}

type spaceCharacterCheck struct{}

func (spaceCharacterCheck) Name() string { return CheckSpaceCharacter }

func (spaceCharacterCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range f.Lines {
		if line.IsBlank() || line.IsComment() || !line.HasDelimiter() {
			continue
		}
		i := strings.IndexByte(line.Raw, '=')
		before := i > 0 && line.Raw[i-1] == ' '
		after := i+1 < len(line.Raw) && line.Raw[i+1] == ' '
		if before || after {
			warnings = append(warnings, warningAt(f, CheckSpaceCharacter, line.Number,
				"The line has spaces around equal sign"))
		}
	}
	return warnings
}

type substitutionKeyCheck struct{}

func (substitutionKeyCheck) Name() string { return CheckSubstitutionKey }

func (substitutionKeyCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range assignmentLines(f) {
		value := line.Value()
		if strings.HasPrefix(value, "'") {
			// Single-quoted values are taken literally, no substitution.
			continue
		}
		if hasMalformedSubstitution(value) {
			warnings = append(warnings, warningAt(f, CheckSubstitutionKey, line.Number,
				fmt.Sprintf("The %s key is not assigned properly using an env variable", line.Key())))
		}
	}
	return warnings
}

// hasMalformedSubstitution reports whether a value contains a `${`
// substitution that is unclosed, empty, or holds invalid key runes.
func hasMalformedSubstitution(value string) bool {
	for rest := value; ; {
		start := strings.Index(rest, "${")
		if start < 0 {
			return false
		}
		rest = rest[start+2:]
		end := strings.IndexByte(rest, '}')
		if end < 0 || end == 0 {
			return true
		}
		for _, r := range rest[:end] {
			if !isKeyRune(r) {
				return true
			}
		}
		rest = rest[end+1:]
	}
}

type trailingWhitespaceCheck struct{}

func (trailingWhitespaceCheck) Name() string { return CheckTrailingWhitespace }

func (trailingWhitespaceCheck) Run(f *File) []Warning {
	var warnings []Warning
	for _, line := range f.Lines {
		if line.IsBlank() || line.Raw == strings.TrimRight(line.Raw, " \t") {
			continue
		}
		warnings = append(warnings, warningAt(f, CheckTrailingWhitespace, line.Number,
			"Trailing whitespace detected"))
	}
	return warnings
}

type unorderedKeyCheck struct{}

func (unorderedKeyCheck) Name() string { return CheckUnorderedKey }

func (unorderedKeyCheck) Run(f *File) []Warning {
	var warnings []Warning
	prev := ""
	for _, line := range f.Lines {
		if line.IsBlank() {
			// A blank line starts a new ordering group.
			prev = ""
			continue
		}
		key := line.Key()
		if key == "" {
			continue
		}
		if prev != "" && key < prev {
			warnings = append(warnings, warningAt(f, CheckUnorderedKey, line.Number,
				fmt.Sprintf("The %s key should go before the %s key", key, prev)))
			continue
		}
		prev = key
	}
	return warnings
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isKeyRune(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9') || r == '_'
}
