package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/spacesedan/lexitrend/internal/models"
)

// Word candidates: letter runs, keeping internal apostrophes so contractions
// match the stop-word set before being discarded.
var wordPattern = regexp.MustCompile(`[a-zA-Z]+(?:'[a-zA-Z]+)*`)

// Tokenize splits each comment into lowercase word tokens, dropping stop
// words and anything without an alphabetic character. Every token keeps the
// timestamp and source URL of the comment it came from. A comment that
// yields no tokens simply contributes nothing.
func Tokenize(comments []models.Comment) []models.Token {
	var tokens []models.Token
	for _, c := range comments {
		for _, w := range wordPattern.FindAllString(strings.ToLower(c.Text), -1) {
			if IsStopWord(w) || !hasAlpha(w) {
				continue
			}
			tokens = append(tokens, models.Token{
				Word:      w,
				Timestamp: c.Timestamp,
				SourceURL: c.SourceURL,
			})
		}
	}
	return tokens
}

func hasAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
