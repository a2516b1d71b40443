package reporting

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spacesedan/lexitrend/internal/models"
)

const TIMESTAMP_FORMAT = time.RFC3339

// WriteComments writes the normalized comment table (comment,date,url).
func WriteComments(path string, comments []models.Comment) error {
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{c.Text, c.Timestamp.Format(TIMESTAMP_FORMAT), c.SourceURL})
	}
	return writeTable(path, []string{"comment", "date", "url"}, rows)
}

// WriteTokens writes the token table (word,date,url).
func WriteTokens(path string, tokens []models.Token) error {
	rows := make([][]string, 0, len(tokens))
	for _, t := range tokens {
		rows = append(rows, []string{t.Word, t.Timestamp.Format(TIMESTAMP_FORMAT), t.SourceURL})
	}
	return writeTable(path, []string{"word", "date", "url"}, rows)
}

// WriteSentimentWords writes per-word sentiment counts (word,sentiment,n).
func WriteSentimentWords(path string, words []models.WordSentimentCount) error {
	rows := make([][]string, 0, len(words))
	for _, w := range words {
		rows = append(rows, []string{w.Word, w.Sentiment, strconv.Itoa(w.Count)})
	}
	return writeTable(path, []string{"word", "sentiment", "n"}, rows)
}

// WriteCategoryCounts writes category totals (sentiment,n); used for both
// the sentiment summary and the emotion breakdown.
func WriteCategoryCounts(path string, counts []models.CategoryCount) error {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Count)})
	}
	return writeTable(path, []string{"sentiment", "n"}, rows)
}

// WriteDailyScores writes the daily sentiment series
// (day,total_score,avg_score,word_count).
func WriteDailyScores(path string, daily []models.DailyScore) error {
	rows := make([][]string, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, []string{
			d.Day,
			strconv.Itoa(d.TotalScore),
			strconv.FormatFloat(d.AverageScore, 'f', -1, 64),
			strconv.Itoa(d.WordCount),
		})
	}
	return writeTable(path, []string{"day", "total_score", "avg_score", "word_count"}, rows)
}

// WriteThreadsUsed writes the thread metadata table (title,comments,url).
func WriteThreadsUsed(path string, threads []models.Thread) error {
	rows := make([][]string, 0, len(threads))
	for _, t := range threads {
		rows = append(rows, []string{t.Title, strconv.Itoa(t.CommentCount), t.URL})
	}
	return writeTable(path, []string{"title", "comments", "url"}, rows)
}

// WriteVaderDaily writes the VADER cross-check series
// (day,mean_compound,comments).
func WriteVaderDaily(path string, daily []models.VaderDaily) error {
	rows := make([][]string, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, []string{
			d.Day,
			strconv.FormatFloat(d.MeanCompound, 'f', -1, 64),
			strconv.Itoa(d.Comments),
		})
	}
	return writeTable(path, []string{"day", "mean_compound", "comments"}, rows)
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Reporting] Failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("[Reporting] Failed to write header for %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("[Reporting] Failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("[Reporting] Failed to flush %s: %w", path, err)
	}

	slog.Info("[Reporting] Wrote table",
		slog.String("path", path),
		slog.Int("rows", len(rows)))
	return nil
}
