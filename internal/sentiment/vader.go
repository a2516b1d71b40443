package sentiment

import (
	"sort"

	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/lexitrend/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// AnalyzeWithVADER scores one normalized comment and labels it.
func AnalyzeWithVADER(text string) (float64, string) {
	score := analyzer.PolarityScores(text).Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

// DailyCompound computes the mean VADER compound score per calendar day over
// whole comments. It runs beside the lexicon scorers as a cross-check and
// never feeds back into them.
func DailyCompound(comments []models.Comment) []models.VaderDaily {
	byDay := make(map[string][]float64)
	for _, c := range comments {
		day := c.Timestamp.Format(models.DAY_FORMAT)
		score, _ := AnalyzeWithVADER(c.Text)
		byDay[day] = append(byDay[day], score)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]models.VaderDaily, 0, len(days))
	for _, day := range days {
		scores := byDay[day]
		out = append(out, models.VaderDaily{
			Day:          day,
			MeanCompound: stat.Mean(scores, nil),
			Comments:     len(scores),
		})
	}
	return out
}
