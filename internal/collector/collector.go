package collector

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/spacesedan/lexitrend/internal/models"
	"github.com/spacesedan/lexitrend/internal/utils"
)

// ThreadFetcher is the slice of the Reddit client the collector needs.
type ThreadFetcher interface {
	SearchThreads(ctx context.Context, subreddit, topic, sortMode, window string) ([]models.Thread, error)
	FetchThreadComments(ctx context.Context, thread models.Thread) ([]models.RawComment, error)
}

// Result is the merged output of one collection run. Comments is a pure
// union over the successfully fetched threads; ThreadsUsed lists exactly
// those threads, ranked by descending comment count.
type Result struct {
	Comments    []models.RawComment
	ThreadsUsed []models.Thread
}

type Collector struct {
	fetcher     ThreadFetcher
	topThreads  int
	parallelism int
}

func New(fetcher ThreadFetcher, topThreads, parallelism int) *Collector {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Collector{
		fetcher:     fetcher,
		topThreads:  topThreads,
		parallelism: parallelism,
	}
}

// SelectTop ranks threads by descending comment count (stable, so equal
// counts keep input order) and returns the first n.
func SelectTop(threads []models.Thread, n int) []models.Thread {
	ranked := append([]models.Thread(nil), threads...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CommentCount > ranked[j].CommentCount
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Run searches for candidate threads, selects the top N, and fetches each
// selected thread's comments with bounded parallelism. A failed thread fetch
// is logged and skipped; it contributes zero comments and never aborts the
// run or affects other threads.
func (c *Collector) Run(ctx context.Context, subreddit, topic, sortMode, window string) (Result, error) {
	threads, err := c.fetcher.SearchThreads(ctx, subreddit, topic, sortMode, window)
	if err != nil {
		return Result{}, fmt.Errorf("[Collector] Thread search failed: %w", err)
	}
	if len(threads) == 0 {
		return Result{}, fmt.Errorf("[Collector] No threads found for topic %q in r/%s", topic, subreddit)
	}

	selected := SelectTop(threads, c.topThreads)
	slog.Info("[Collector] Selected threads",
		slog.Int("candidates", len(threads)),
		slog.Int("selected", len(selected)))

	comments := utils.NewMergeBuffer[models.RawComment]()
	used := utils.NewMergeBuffer[models.Thread]()

	sem := make(chan struct{}, c.parallelism)
	var wg sync.WaitGroup

	for i, thread := range selected {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, thread models.Thread) {
			defer wg.Done()
			defer func() { <-sem }()

			batch, err := c.fetcher.FetchThreadComments(ctx, thread)
			if err != nil {
				slog.Warn("[Collector] Skipping thread after fetch failure",
					slog.String("thread", thread.ID),
					slog.String("error", err.Error()))
				return
			}

			comments.Add(batch...)
			used.Add(thread)

			slog.Info("[Collector] Fetched thread",
				slog.Int("index", i+1),
				slog.Int("of", len(selected)),
				slog.String("title", thread.Title),
				slog.Int("comments", len(batch)))
		}(i, thread)
	}
	wg.Wait()

	threadsUsed := used.Items()
	sort.SliceStable(threadsUsed, func(i, j int) bool {
		return threadsUsed[i].CommentCount > threadsUsed[j].CommentCount
	})

	slog.Info("[Collector] Collection complete",
		slog.Int("threads_used", len(threadsUsed)),
		slog.Int("comments", comments.Size()))

	return Result{Comments: comments.Items(), ThreadsUsed: threadsUsed}, nil
}
