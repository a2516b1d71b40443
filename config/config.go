package config

import (
	"os"
	"strconv"
)

const (
	DEFAULT_SUBREDDIT   = "GooglePixel"
	DEFAULT_TOPIC       = "pixel"
	DEFAULT_SORT        = "top"
	DEFAULT_TIME_WINDOW = "year"
	DEFAULT_TOP_THREADS = 40
	DEFAULT_PARALLELISM = 4
	DEFAULT_OUTPUT_DIR  = "out"
)

// Config holds the run parameters for a single pipeline execution.
type Config struct {
	Subreddit   string
	Topic       string
	Sort        string
	TimeWindow  string
	TopThreads  int
	Parallelism int
	OutputDir   string

	// Optional overrides for the embedded lexicons.
	BinaryLexiconPath  string
	EmotionLexiconPath string
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for anything unset.
func FromEnv() Config {
	return Config{
		Subreddit:          getEnv("LEXITREND_SUBREDDIT", DEFAULT_SUBREDDIT),
		Topic:              getEnv("LEXITREND_TOPIC", DEFAULT_TOPIC),
		Sort:               getEnv("LEXITREND_SORT", DEFAULT_SORT),
		TimeWindow:         getEnv("LEXITREND_TIME_WINDOW", DEFAULT_TIME_WINDOW),
		TopThreads:         getEnvInt("LEXITREND_TOP_THREADS", DEFAULT_TOP_THREADS),
		Parallelism:        getEnvInt("LEXITREND_PARALLELISM", DEFAULT_PARALLELISM),
		OutputDir:          getEnv("LEXITREND_OUTPUT_DIR", DEFAULT_OUTPUT_DIR),
		BinaryLexiconPath:  os.Getenv("LEXITREND_BINARY_LEXICON"),
		EmotionLexiconPath: os.Getenv("LEXITREND_EMOTION_LEXICON"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
