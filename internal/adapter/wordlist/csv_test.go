package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Parallel()

	input := "Lemma,SFI,U\nthe,73.2,1\nbe,72.4,1\n,,\n  have ,70.1,1\nbe,1,1\n"

	words, err := parseCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"the", "be", "have"}, words)
}

func TestParseCSV_VariableColumns(t *testing.T) {
	t.Parallel()

	words, err := parseCSV(strings.NewReader("word\nrun\njog,extra,columns\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"run", "jog"}, words)
}

func TestParseCSV_Empty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "Lemma,SFI\n", "Lemma\n\n,\n"} {
		_, err := parseCSV(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrEmpty, "input %q", input)
	}
}

func TestParseCSV_Malformed(t *testing.T) {
	t.Parallel()

	_, err := parseCSV(strings.NewReader("word\n\"unterminated\n"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmpty)
}

func TestLoad_CSVByExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ngsl.CSV")
	require.NoError(t, os.WriteFile(path, []byte("Lemma,SFI\nrun,70\n# not a comment,1\n"), 0o644))

	s, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"run", "# not a comment"}, s.words)
}
