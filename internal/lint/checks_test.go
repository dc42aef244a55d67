package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCheck runs a single named check against the given content.
func runCheck(t *testing.T, name, content string) []Warning {
	t.Helper()
	f := parseFile(".env", content)
	for _, c := range allChecks() {
		if c.Name() == name {
			return c.Run(f)
		}
	}
	t.Fatalf("no check named %s", name)
	return nil
}

func TestCheckNamesStableOrder(t *testing.T) {
	expected := []string{
		"DuplicatedKey",
		"EndingBlankLine",
		"ExtraBlankLine",
		"IncorrectDelimiter",
		"KeyWithoutValue",
		"LeadingCharacter",
		"LowercaseKey",
		"QuoteCharacter",
		"SpaceCharacter",
		"SubstitutionKey",
		"TrailingWhitespace",
		"UnorderedKey",
	}
	assert.Equal(t, expected, checkNames())
}

func TestDuplicatedKey(t *testing.T) {
	warnings := runCheck(t, CheckDuplicatedKey, "FOO=1\nBAR=2\nFOO=3\n")
	require.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Line)
	assert.Equal(t, "The FOO key is duplicated", warnings[0].Message)

	assert.Empty(t, runCheck(t, CheckDuplicatedKey, "FOO=1\nBAR=2\n"))
}

func TestEndingBlankLine(t *testing.T) {
	warnings := runCheck(t, CheckEndingBlankLine, "FOO=1")
	require.Len(t, warnings, 1)
	assert.Equal(t, "No blank line at the end of the file", warnings[0].Message)

	assert.Empty(t, runCheck(t, CheckEndingBlankLine, "FOO=1\n"))
	assert.Empty(t, runCheck(t, CheckEndingBlankLine, ""))
}

func TestExtraBlankLine(t *testing.T) {
	warnings := runCheck(t, CheckExtraBlankLine, "FOO=1\n\n\nBAR=2\n")
	require.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Line)

	assert.Empty(t, runCheck(t, CheckExtraBlankLine, "FOO=1\n\nBAR=2\n"))
}

func TestIncorrectDelimiter(t *testing.T) {
	warnings := runCheck(t, CheckIncorrectDelimiter, "FOO-BAR=1\n")
	require.Len(t, warnings, 1)
	assert.Equal(t, "The FOO-BAR key has incorrect delimiter", warnings[0].Message)

	assert.Empty(t, runCheck(t, CheckIncorrectDelimiter, "FOO_BAR=1\nF1=2\n"))
}

func TestKeyWithoutValue(t *testing.T) {
	warnings := runCheck(t, CheckKeyWithoutValue, "FOO\n")
	require.Len(t, warnings, 1)
	assert.Equal(t, "The FOO key should be with a value or have an equal sign", warnings[0].Message)

	assert.Empty(t, runCheck(t, CheckKeyWithoutValue, "FOO=\n"))
	assert.Empty(t, runCheck(t, CheckKeyWithoutValue, "# comment\n"))
}

func TestLeadingCharacter(t *testing.T) {
	for _, raw := range []string{"1FOO=1\n", "*FOO=1\n", "-FOO=1\n"} {
		warnings := runCheck(t, CheckLeadingCharacter, raw)
		require.Len(t, warnings, 1, "content %q", raw)
		assert.Equal(t, "Invalid leading character detected", warnings[0].Message)
	}

	assert.Empty(t, runCheck(t, CheckLeadingCharacter, "FOO=1\n_FOO=2\n"))
}

func TestLowercaseKey(t *testing.T) {
	warnings := runCheck(t, CheckLowercaseKey, "Foo=1\n")
	require.Len(t, warnings, 1)
	assert.Equal(t, "The Foo key should be in uppercase", warnings[0].Message)

	assert.Empty(t, runCheck(t, CheckLowercaseKey, "FOO=1\nFOO_2=2\n"))
}

func TestQuoteCharacter(t *testing.T) {
	warnings := runCheck(t, CheckQuoteCharacter, "FOO=\"bar\"\n")
	require.Len(t, warnings, 1)
	assert.Equal(t, `The value has quote characters (", ')`, warnings[0].Message)

	require.Len(t, runCheck(t, CheckQuoteCharacter, "FOO='bar'\n"), 1)
	assert.Empty(t, runCheck(t, CheckQuoteCharacter, "FOO=bar\n"))
}

func TestSpaceCharacter(t *testing.T) {
	for _, raw := range []string{"FOO =1\n", "FOO= 1\n", "FOO = 1\n"} {
		warnings := runCheck(t, CheckSpaceCharacter, raw)
		require.Len(t, warnings, 1, "content %q", raw)
		assert.Equal(t, "The line has spaces around equal sign", warnings[0].Message)
	}

	assert.Empty(t, runCheck(t, CheckSpaceCharacter, "FOO=1\n"))
	assert.Empty(t, runCheck(t, CheckSpaceCharacter, "# a = b\n"))
}

func TestSubstitutionKey(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    int
	}{
		{name: "unclosed brace", content: "FOO=${BAR\n", want: 1},
		{name: "empty substitution", content: "FOO=${}\n", want: 1},
		{name: "invalid key rune", content: "FOO=${BAR!}\n", want: 1},
		{name: "wellformed", content: "FOO=${BAR}\n", want: 0},
		{name: "two wellformed", content: "FOO=${BAR}-${BAZ}\n", want: 0},
		{name: "single quoted is literal", content: "FOO='${BAR'\n", want: 0},
		{name: "no substitution", content: "FOO=bar\n", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, runCheck(t, CheckSubstitutionKey, tc.content), tc.want)
		})
	}
}

func TestTrailingWhitespace(t *testing.T) {
	warnings := runCheck(t, CheckTrailingWhitespace, "FOO=1 \n")
	require.Len(t, warnings, 1)
	assert.Equal(t, "Trailing whitespace detected", warnings[0].Message)

	// Blank lines are ExtraBlankLine territory.
	assert.Empty(t, runCheck(t, CheckTrailingWhitespace, "FOO=1\n  \n"))
}

func TestUnorderedKey(t *testing.T) {
	warnings := runCheck(t, CheckUnorderedKey, "ZOO=1\nBAR=2\n")
	require.Len(t, warnings, 1)
	assert.Equal(t, "The BAR key should go before the ZOO key", warnings[0].Message)

	assert.Empty(t, runCheck(t, CheckUnorderedKey, "BAR=1\nZOO=2\n"))

	// A blank line starts a new ordering group.
	assert.Empty(t, runCheck(t, CheckUnorderedKey, "ZOO=1\n\nBAR=2\n"))
}

func TestRunChecksSkips(t *testing.T) {
	f := parseFile(".env", "foo=1\n")

	warnings := runChecks(f, nil)
	require.Len(t, warnings, 1)
	assert.Equal(t, CheckLowercaseKey, warnings[0].Check)

	assert.Empty(t, runChecks(f, []string{CheckLowercaseKey}))
}
