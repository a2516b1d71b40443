package reporting

import (
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spacesedan/lexitrend/internal/models"
)

const (
	CHART_WIDTH  = 10 * vg.Inch
	CHART_HEIGHT = 6 * vg.Inch
)

// RenderTopWords renders a bar chart of the highest-count words for one
// sentiment. The input is already sorted descending, so the chart just takes
// the first matching `limit` entries.
func RenderTopWords(path, title, sentiment string, words []models.WordSentimentCount, limit int) error {
	var labels []string
	var values plotter.Values
	for _, w := range words {
		if w.Sentiment != sentiment {
			continue
		}
		labels = append(labels, w.Word)
		values = append(values, float64(w.Count))
		if len(labels) == limit {
			break
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "n"
	p.X.Tick.Label.Rotation = -0.9
	p.X.Tick.Label.XAlign = -0.8

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("[Reporting] Failed to build bar chart %s: %w", path, err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	return saveChart(p, path)
}

// RenderDailyTrend renders the daily average sentiment score as a line.
func RenderDailyTrend(path string, daily []models.DailyScore) error {
	xys := make(plotter.XYs, 0, len(daily))
	for _, d := range daily {
		day, err := time.Parse(models.DAY_FORMAT, d.Day)
		if err != nil {
			return fmt.Errorf("[Reporting] Bad day value %q: %w", d.Day, err)
		}
		xys = append(xys, plotter.XY{X: float64(day.Unix()), Y: d.AverageScore})
	}

	p := plot.New()
	p.Title.Text = "Average sentiment by day"
	p.X.Label.Text = "day"
	p.Y.Label.Text = "avg score"
	p.X.Tick.Marker = plot.TimeTicks{Format: models.DAY_FORMAT}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("[Reporting] Failed to build trend line %s: %w", path, err)
	}
	p.Add(line)

	return saveChart(p, path)
}

// RenderEmotionBreakdown renders emotion category totals as a bar chart.
func RenderEmotionBreakdown(path string, totals []models.CategoryCount) error {
	labels := make([]string, 0, len(totals))
	values := make(plotter.Values, 0, len(totals))
	for _, c := range totals {
		labels = append(labels, c.Category)
		values = append(values, float64(c.Count))
	}

	p := plot.New()
	p.Title.Text = "Emotion breakdown"
	p.Y.Label.Text = "n"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("[Reporting] Failed to build emotion chart %s: %w", path, err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	return saveChart(p, path)
}

func saveChart(p *plot.Plot, path string) error {
	if err := p.Save(CHART_WIDTH, CHART_HEIGHT, path); err != nil {
		return fmt.Errorf("[Reporting] Failed to save chart %s: %w", path, err)
	}
	slog.Info("[Reporting] Wrote chart", slog.String("path", path))
	return nil
}
