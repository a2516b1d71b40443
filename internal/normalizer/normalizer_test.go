package normalizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/lexitrend/internal/models"
)

func TestNormalize_DropsEmptyAndDeleted(t *testing.T) {
	raw := []models.RawComment{
		{Body: "a real comment", CreatedUTC: 1748779200, SourceURL: "u1"},
		{Body: "", CreatedUTC: 1748779200, SourceURL: "u2"},
		{Body: "   ", CreatedUTC: 1748779200, SourceURL: "u3"},
		{Body: "[deleted]", CreatedUTC: 1748779200, SourceURL: "u4"},
		{Body: "[removed]", CreatedUTC: 1748779200, SourceURL: "u5"},
	}

	comments, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "a real comment", comments[0].Text)
	assert.Equal(t, "u1", comments[0].SourceURL)
}

func TestNormalize_ParsesTimestampUTC(t *testing.T) {
	raw := []models.RawComment{
		{Body: "hello", CreatedUTC: 1748779200, SourceURL: "u1"},
	}

	comments, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, time.Unix(1748779200, 0).UTC(), comments[0].Timestamp)
	assert.Equal(t, time.UTC, comments[0].Timestamp.Location())
}

func TestNormalize_DropsMissingTimestamp(t *testing.T) {
	raw := []models.RawComment{
		{Body: "no timestamp", CreatedUTC: 0, SourceURL: "u1"},
		{Body: "fine", CreatedUTC: 1748779200, SourceURL: "u2"},
	}

	comments, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "fine", comments[0].Text)
}

func TestNormalize_ZeroUsableRowsIsStructural(t *testing.T) {
	_, err := Normalize([]models.RawComment{
		{Body: "", CreatedUTC: 1748779200},
		{Body: "[deleted]", CreatedUTC: 1748779200},
	})
	assert.Error(t, err)

	_, err = Normalize(nil)
	assert.Error(t, err)
}

func TestConvertMarkdownToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "just text", "just text"},
		{"bold", "this is **bold** text", "this is bold text"},
		{"markdown link", "see [the docs](https://example.com/docs) here", "see the docs here"},
		{"bare url", "look at https://example.com now", "look at now"},
		{"collapses whitespace", "one\n\ntwo   three", "one two three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertMarkdownToText(tt.input))
		})
	}
}
