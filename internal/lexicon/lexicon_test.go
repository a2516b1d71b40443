package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBinary_EmbeddedDefault(t *testing.T) {
	lex, err := LoadBinary("")
	require.NoError(t, err)
	require.NotEmpty(t, lex)

	assert.Equal(t, SENTIMENT_POSITIVE, lex["great"])
	assert.Equal(t, SENTIMENT_POSITIVE, lex["love"])
	assert.Equal(t, SENTIMENT_NEGATIVE, lex["terrible"])
	assert.Equal(t, SENTIMENT_NEGATIVE, lex["awful"])
	assert.Equal(t, SENTIMENT_NEGATIVE, lex["bug"])
}

func TestLoadBinary_CustomFileLowercasesAndSkipsHeader(t *testing.T) {
	path := writeTempCSV(t, "word,sentiment\nGreat,POSITIVE\nawful,negative\n")

	lex, err := LoadBinary(path)
	require.NoError(t, err)
	assert.Len(t, lex, 2)
	assert.Equal(t, SENTIMENT_POSITIVE, lex["great"])
	assert.Equal(t, SENTIMENT_NEGATIVE, lex["awful"])
}

func TestLoadBinary_RejectsUnknownCategory(t *testing.T) {
	path := writeTempCSV(t, "word,sentiment\nokay,meh\n")

	_, err := LoadBinary(path)
	assert.Error(t, err)
}

func TestLoadBinary_MissingFile(t *testing.T) {
	_, err := LoadBinary(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadBinary_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "word,sentiment\n")

	_, err := LoadBinary(path)
	assert.Error(t, err)
}

func TestLoadEmotion_ManyToMany(t *testing.T) {
	path := writeTempCSV(t, "word,sentiment\nterrible,anger\nterrible,fear\nterrible,anger\nlove,joy\n")

	lex, err := LoadEmotion(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"anger", "fear"}, lex["terrible"], "duplicates collapse, categories stay")
	assert.Equal(t, []string{"joy"}, lex["love"])
}

func TestLoadEmotion_EmbeddedDefault(t *testing.T) {
	lex, err := LoadEmotion("")
	require.NoError(t, err)
	require.NotEmpty(t, lex)

	// "terrible" fans out to several categories in the NRC-style default.
	assert.Greater(t, len(lex["terrible"]), 1)
}
