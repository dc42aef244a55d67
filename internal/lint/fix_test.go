package lint

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readBack(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func backupsFor(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	dir := filepath.Dir(path)
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, filepath.Base(path)+".") && strings.HasSuffix(name, ".bak") {
			backups = append(backups, filepath.Join(dir, name))
		}
	}
	return backups
}

func TestFixRewritesWarnings(t *testing.T) {
	plainColors(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "d/.env", []byte("BAR = 1 \nZOO\n"), 0644))

	l, out := newTestLinter(fs)
	err := l.Fix(&Options{Inputs: []string{"d/.env"}, NoBackup: true})

	require.NoError(t, err)
	assert.Equal(t, "BAR=1\nZOO=\n", readBack(t, fs, "d/.env"))
	assert.Contains(t, out.String(), "Fixing d/.env")
	assert.Contains(t, out.String(), "SpaceCharacter")
	assert.Empty(t, backupsFor(t, fs, "d/.env"))
}

func TestFixWritesBackupByDefault(t *testing.T) {
	plainColors(t)
	fs := afero.NewMemMapFs()
	original := "foo=1\n"
	require.NoError(t, afero.WriteFile(fs, "d/.env", []byte(original), 0644))

	l, out := newTestLinter(fs)
	err := l.Fix(&Options{Inputs: []string{"d/.env"}})

	require.NoError(t, err)
	backups := backupsFor(t, fs, "d/.env")
	require.Len(t, backups, 1)
	assert.Equal(t, original, readBack(t, fs, backups[0]))
	assert.Equal(t, "FOO=1\n", readBack(t, fs, "d/.env"))
	assert.Contains(t, out.String(), "Original file was backed up to:")
}

func TestFixCleanFileLeftAlone(t *testing.T) {
	plainColors(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "d/.env", []byte("FOO=1\n"), 0644))

	l, _ := newTestLinter(fs)
	require.NoError(t, l.Fix(&Options{Inputs: []string{"d/.env"}}))

	assert.Equal(t, "FOO=1\n", readBack(t, fs, "d/.env"))
	assert.Empty(t, backupsFor(t, fs, "d/.env"))
}

func TestApplyFixes(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		fixed   string
	}{
		{name: "duplicated key commented out", content: "FOO=1\nFOO=2\n", fixed: "FOO=1\n# FOO=2\n"},
		{name: "ending blank line added", content: "FOO=1", fixed: "FOO=1\n"},
		{name: "extra blank line removed", content: "A=1\n\n\nB=2\n", fixed: "A=1\n\nB=2\n"},
		{name: "incorrect delimiter underscored", content: "FOO-BAR=1\n", fixed: "FOO_BAR=1\n"},
		{name: "key without value gains equal sign", content: "FOO\n", fixed: "FOO=\n"},
		{name: "invalid leading characters trimmed", content: "1FOO=1\n", fixed: "FOO=1\n"},
		{name: "lowercase key uppercased", content: "foo=1\n", fixed: "FOO=1\n"},
		{name: "export prefix preserved", content: "export foo=1\n", fixed: "export FOO=1\n"},
		{name: "quotes stripped", content: "FOO=\"bar\"\n", fixed: "FOO=bar\n"},
		{name: "spaces around delimiter removed", content: "FOO = 1\n", fixed: "FOO=1\n"},
		{name: "trailing whitespace trimmed", content: "FOO=1  \n", fixed: "FOO=1\n"},
		{name: "unordered keys sorted within group", content: "ZOO=1\nBAR=2\n", fixed: "BAR=2\nZOO=1\n"},
		{name: "comment keeps its position while sorting", content: "# header\nZOO=1\nBAR=2\n", fixed: "# header\nBAR=2\nZOO=1\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := parseFile(".env", tc.content)
			applyFixes(f, runChecks(f, nil))
			assert.Equal(t, tc.fixed, f.content())
		})
	}
}

func TestApplyFixesLeavesSubstitutionKeyUnfixed(t *testing.T) {
	f := parseFile(".env", "FOO=${BAR\n")
	warnings := runChecks(f, nil)
	require.Len(t, warnings, 1)

	fixed, unfixed := applyFixes(f, warnings)
	assert.Zero(t, fixed)
	require.Len(t, unfixed, 1)
	assert.Equal(t, CheckSubstitutionKey, unfixed[0].Check)
	assert.Equal(t, "FOO=${BAR\n", f.content())
}
