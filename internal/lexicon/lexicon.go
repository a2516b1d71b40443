package lexicon

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/bing.csv data/nrc.csv
var defaultData embed.FS

const (
	SENTIMENT_POSITIVE = "positive"
	SENTIMENT_NEGATIVE = "negative"

	DEFAULT_BINARY_FILE  = "data/bing.csv"
	DEFAULT_EMOTION_FILE = "data/nrc.csv"
)

// Binary maps a lowercase word to exactly one of positive/negative.
type Binary map[string]string

// Emotion maps a lowercase word to one or more emotion categories.
type Emotion map[string][]string

// LoadBinary loads a word,sentiment CSV. An empty path loads the embedded
// Bing-style default.
func LoadBinary(path string) (Binary, error) {
	entries, err := loadEntries(path, DEFAULT_BINARY_FILE)
	if err != nil {
		return nil, fmt.Errorf("[Lexicon] Failed to load binary lexicon: %w", err)
	}

	lex := make(Binary, len(entries))
	for _, e := range entries {
		if e.category != SENTIMENT_POSITIVE && e.category != SENTIMENT_NEGATIVE {
			return nil, fmt.Errorf("[Lexicon] Invalid binary category %q for word %q", e.category, e.word)
		}
		lex[e.word] = e.category
	}
	if len(lex) == 0 {
		return nil, fmt.Errorf("[Lexicon] Binary lexicon is empty")
	}
	return lex, nil
}

// LoadEmotion loads a word,category CSV where a word may repeat under
// several categories. An empty path loads the embedded NRC-style default.
func LoadEmotion(path string) (Emotion, error) {
	entries, err := loadEntries(path, DEFAULT_EMOTION_FILE)
	if err != nil {
		return nil, fmt.Errorf("[Lexicon] Failed to load emotion lexicon: %w", err)
	}

	lex := make(Emotion)
	for _, e := range entries {
		if !contains(lex[e.word], e.category) {
			lex[e.word] = append(lex[e.word], e.category)
		}
	}
	if len(lex) == 0 {
		return nil, fmt.Errorf("[Lexicon] Emotion lexicon is empty")
	}
	return lex, nil
}

type entry struct {
	word     string
	category string
}

func loadEntries(path, embeddedFallback string) ([]entry, error) {
	var r io.ReadCloser
	var err error
	if path == "" {
		r, err = defaultData.Open(embeddedFallback)
	} else {
		r, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return parseEntries(r)
}

func parseEntries(r io.Reader) ([]entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var entries []entry
	for i, rec := range records {
		word := strings.ToLower(strings.TrimSpace(rec[0]))
		category := strings.ToLower(strings.TrimSpace(rec[1]))
		if i == 0 && word == "word" {
			continue
		}
		if word == "" || category == "" {
			continue
		}
		entries = append(entries, entry{word: word, category: category})
	}
	return entries, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
