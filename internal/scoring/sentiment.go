package scoring

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/lexitrend/internal/lexicon"
	"github.com/spacesedan/lexitrend/internal/models"
)

// SentimentReport bundles the three tables derived from the binary lexicon
// join: per-word counts, category totals, and the daily score series.
type SentimentReport struct {
	Words   []models.WordSentimentCount
	Summary []models.CategoryCount
	Daily   []models.DailyScore
}

// ScoreSentiment inner-joins tokens against the binary lexicon. Tokens
// missing from the lexicon are dropped from all three outputs, and a day
// without a single matched token gets no daily row at all.
func ScoreSentiment(tokens []models.Token, lex lexicon.Binary) SentimentReport {
	wordIndex := make(map[string]int)
	var words []models.WordSentimentCount

	summaryIndex := make(map[string]int)
	var summary []models.CategoryCount

	type dayAgg struct {
		values []float64
		total  int
	}
	days := make(map[string]*dayAgg)

	for _, tok := range tokens {
		sentiment, ok := lex[tok.Word]
		if !ok {
			continue
		}

		if i, seen := wordIndex[tok.Word]; seen {
			words[i].Count++
		} else {
			wordIndex[tok.Word] = len(words)
			words = append(words, models.WordSentimentCount{
				Word:      tok.Word,
				Sentiment: sentiment,
				Count:     1,
			})
		}

		if i, seen := summaryIndex[sentiment]; seen {
			summary[i].Count++
		} else {
			summaryIndex[sentiment] = len(summary)
			summary = append(summary, models.CategoryCount{Category: sentiment, Count: 1})
		}

		value := 1.0
		if sentiment == lexicon.SENTIMENT_NEGATIVE {
			value = -1.0
		}
		day := tok.Timestamp.Format(models.DAY_FORMAT)
		agg, seen := days[day]
		if !seen {
			agg = &dayAgg{}
			days[day] = agg
		}
		agg.values = append(agg.values, value)
		agg.total += int(value)
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Count > words[j].Count
	})
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Count > summary[j].Count
	})

	dayKeys := make([]string, 0, len(days))
	for day := range days {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)

	daily := make([]models.DailyScore, 0, len(dayKeys))
	for _, day := range dayKeys {
		agg := days[day]
		daily = append(daily, models.DailyScore{
			Day:          day,
			TotalScore:   agg.total,
			AverageScore: stat.Mean(agg.values, nil),
			WordCount:    len(agg.values),
		})
	}

	matched := 0
	for _, c := range summary {
		matched += c.Count
	}
	slog.Info("[Scoring] Sentiment join complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("matched", matched),
		slog.Int("distinct_words", len(words)),
		slog.Int("days", len(daily)))

	return SentimentReport{Words: words, Summary: summary, Daily: daily}
}
