package models

import "time"

// DAY_FORMAT keys every per-day aggregate, shared by the scorers and the
// reporter so the day keys cannot drift apart.
const DAY_FORMAT = "2006-01-02"

// Thread is one discussion post considered for collection. Threads are
// fetched once, ranked by CommentCount, and immutable afterward.
type Thread struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CommentCount int    `json:"comment_count"`
	URL          string `json:"url"`
}

// RawComment is a comment as it comes off the wire, before normalization.
type RawComment struct {
	Body       string  `json:"body"`
	CreatedUTC float64 `json:"created_utc"`
	SourceURL  string  `json:"source_url"`
}

// Comment is a normalized comment: non-empty plain text with a parsed
// timestamp.
type Comment struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	SourceURL string    `json:"source_url"`
}

// Token is a single word unit surviving stop-word and non-alphabetic
// filtering, still tied to its comment's timestamp and source.
type Token struct {
	Word      string    `json:"word"`
	Timestamp time.Time `json:"timestamp"`
	SourceURL string    `json:"source_url"`
}

// WordSentimentCount is one row of the per-word sentiment table.
type WordSentimentCount struct {
	Word      string `json:"word"`
	Sentiment string `json:"sentiment"`
	Count     int    `json:"n"`
}

// CategoryCount is a per-category total, used for both the sentiment
// summary and the emotion breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"n"`
}

// DailyScore aggregates lexicon-matched tokens for one calendar day.
// Days without a single match never get a row.
type DailyScore struct {
	Day          string  `json:"day"`
	TotalScore   int     `json:"total_score"`
	AverageScore float64 `json:"average_score"`
	WordCount    int     `json:"word_count"`
}

// VaderDaily is the per-day mean VADER compound score over whole comments,
// kept as an informational cross-check next to the lexicon series.
type VaderDaily struct {
	Day          string  `json:"day"`
	MeanCompound float64 `json:"mean_compound"`
	Comments     int     `json:"comments"`
}
