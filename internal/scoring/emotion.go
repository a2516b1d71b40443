package scoring

import (
	"log/slog"
	"sort"

	"github.com/spacesedan/lexitrend/internal/lexicon"
	"github.com/spacesedan/lexitrend/internal/models"
)

// ScoreEmotions inner-joins tokens against the emotion lexicon. The join is
// many-to-many: a token mapped to k categories adds one to each of the k
// totals. Unmatched tokens contribute nothing.
func ScoreEmotions(tokens []models.Token, lex lexicon.Emotion) []models.CategoryCount {
	index := make(map[string]int)
	var totals []models.CategoryCount

	for _, tok := range tokens {
		for _, category := range lex[tok.Word] {
			if i, seen := index[category]; seen {
				totals[i].Count++
			} else {
				index[category] = len(totals)
				totals = append(totals, models.CategoryCount{Category: category, Count: 1})
			}
		}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Count > totals[j].Count
	})

	slog.Info("[Scoring] Emotion join complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("categories", len(totals)))

	return totals
}
