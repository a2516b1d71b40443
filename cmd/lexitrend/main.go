package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spacesedan/lexitrend/config"
	"github.com/spacesedan/lexitrend/internal/clients"
	"github.com/spacesedan/lexitrend/internal/collector"
	"github.com/spacesedan/lexitrend/internal/lexicon"
	"github.com/spacesedan/lexitrend/internal/logging"
	"github.com/spacesedan/lexitrend/internal/normalizer"
	"github.com/spacesedan/lexitrend/internal/reporting"
	"github.com/spacesedan/lexitrend/internal/scoring"
	"github.com/spacesedan/lexitrend/internal/sentiment"
	"github.com/spacesedan/lexitrend/internal/tokenizer"
)

const TOP_WORDS_LIMIT = 20

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.FromEnv()
	if err := run(ctx, cfg); err != nil {
		slog.Error("[Main] Pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	slog.Info("[Main] Starting pipeline",
		slog.String("subreddit", cfg.Subreddit),
		slog.String("topic", cfg.Topic),
		slog.String("sort", cfg.Sort),
		slog.String("window", cfg.TimeWindow),
		slog.Int("top_threads", cfg.TopThreads))

	binaryLex, err := lexicon.LoadBinary(cfg.BinaryLexiconPath)
	if err != nil {
		return err
	}
	emotionLex, err := lexicon.LoadEmotion(cfg.EmotionLexiconPath)
	if err != nil {
		return err
	}

	coll := collector.New(clients.GetRedditClient(), cfg.TopThreads, cfg.Parallelism)
	result, err := coll.Run(ctx, cfg.Subreddit, cfg.Topic, cfg.Sort, cfg.TimeWindow)
	if err != nil {
		return err
	}

	comments, err := normalizer.Normalize(result.Comments)
	if err != nil {
		return err
	}

	tokens := tokenizer.Tokenize(comments)
	slog.Info("[Main] Tokenized comments",
		slog.Int("comments", len(comments)),
		slog.Int("tokens", len(tokens)))

	report := scoring.ScoreSentiment(tokens, binaryLex)
	emotions := scoring.ScoreEmotions(tokens, emotionLex)
	vaderDaily := sentiment.DailyCompound(comments)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("[Main] Failed to create output dir %s: %w", cfg.OutputDir, err)
	}
	out := func(name string) string { return filepath.Join(cfg.OutputDir, name) }

	if err := reporting.WriteComments(out("comments.csv"), comments); err != nil {
		return err
	}
	if err := reporting.WriteTokens(out("tokens.csv"), tokens); err != nil {
		return err
	}
	if err := reporting.WriteSentimentWords(out("sentiment_words.csv"), report.Words); err != nil {
		return err
	}
	if err := reporting.WriteCategoryCounts(out("sentiment_summary.csv"), report.Summary); err != nil {
		return err
	}
	if err := reporting.WriteDailyScores(out("sentiment_by_day.csv"), report.Daily); err != nil {
		return err
	}
	if err := reporting.WriteCategoryCounts(out("emotions.csv"), emotions); err != nil {
		return err
	}
	if err := reporting.WriteThreadsUsed(out("threads_used.csv"), result.ThreadsUsed); err != nil {
		return err
	}
	if err := reporting.WriteVaderDaily(out("vader_by_day.csv"), vaderDaily); err != nil {
		return err
	}

	if err := reporting.RenderTopWords(out("top_positive_words.png"),
		"Top positive words", lexicon.SENTIMENT_POSITIVE, report.Words, TOP_WORDS_LIMIT); err != nil {
		return err
	}
	if err := reporting.RenderTopWords(out("top_negative_words.png"),
		"Top negative words", lexicon.SENTIMENT_NEGATIVE, report.Words, TOP_WORDS_LIMIT); err != nil {
		return err
	}
	if err := reporting.RenderDailyTrend(out("sentiment_by_day.png"), report.Daily); err != nil {
		return err
	}
	if err := reporting.RenderEmotionBreakdown(out("emotions.png"), emotions); err != nil {
		return err
	}

	for _, c := range report.Summary {
		slog.Info("[Main] Sentiment total",
			slog.String("sentiment", c.Category),
			slog.Int("n", c.Count))
	}
	slog.Info("[Main] Pipeline complete",
		slog.Int("threads_used", len(result.ThreadsUsed)),
		slog.Int("comments", len(comments)),
		slog.Int("tokens", len(tokens)),
		slog.Int("days", len(report.Daily)))

	return nil
}
