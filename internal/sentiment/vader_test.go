package sentiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/lexitrend/internal/models"
)

func TestAnalyzeWithVADER_Labels(t *testing.T) {
	score, label := AnalyzeWithVADER("I absolutely love this phone, it is fantastic!")
	assert.Equal(t, "positive", label)
	assert.Greater(t, score, 0.0)

	score, label = AnalyzeWithVADER("This is terrible, I hate it.")
	assert.Equal(t, "negative", label)
	assert.Less(t, score, 0.0)
}

func TestDailyCompound_GroupsByDay(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	daily := DailyCompound([]models.Comment{
		{Text: "I love this phone", Timestamp: day1},
		{Text: "this phone is fantastic", Timestamp: day1.Add(2 * time.Hour)},
		{Text: "what a terrible update", Timestamp: day2},
	})

	require.Len(t, daily, 2)
	assert.Equal(t, "2025-06-01", daily[0].Day)
	assert.Equal(t, 2, daily[0].Comments)
	assert.Greater(t, daily[0].MeanCompound, 0.0)

	assert.Equal(t, "2025-06-02", daily[1].Day)
	assert.Equal(t, 1, daily[1].Comments)
	assert.Less(t, daily[1].MeanCompound, 0.0)
}
