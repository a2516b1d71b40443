package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/spacesedan/lexitrend/internal/models"
)

var (
	redditClientInstance *RedditClient
	redditClientOnce     sync.Once
)

type RedditClient struct {
	Config  *clientcredentials.Config
	Client  *http.Client
	limiter *rate.Limiter
	mu      *sync.Mutex
}

func GetRedditClient() *RedditClient {
	redditClientOnce.Do(func() {
		oauthConf := &clientcredentials.Config{
			ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
			ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
			TokenURL:     REDDIT_AUTH_URL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}

		redditClientInstance = &RedditClient{
			Config:  oauthConf,
			Client:  oauthConf.Client(context.Background()),
			limiter: rate.NewLimiter(rate.Every(REQUEST_INTERVAL), REQUEST_BURST),
			mu:      &sync.Mutex{},
		}
	})

	return redditClientInstance
}

func (rc *RedditClient) RefreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Client = rc.Config.Client(context.Background())
}

// httpClient snapshots rc.Client under the mutex; RefreshClient may swap it
// from another goroutine while fetches are in flight.
func (rc *RedditClient) httpClient() *http.Client {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.Client
}

// SearchThreads queries a subreddit for threads matching topic, using the
// given Reddit sort mode and time window. Threads come back in API order;
// ranking by comment count happens in the collector.
func (rc *RedditClient) SearchThreads(ctx context.Context, subreddit, topic, sortMode, window string) ([]models.Thread, error) {
	parsedUrl, err := url.Parse(fmt.Sprintf("%s/r/%s/search", REDDIT_API_URL, subreddit))
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("q", topic)
	queryParams.Add("sort", sortMode)
	queryParams.Add("t", window)
	queryParams.Add("restrict_sr", "1")
	queryParams.Add("limit", strconv.Itoa(SEARCH_PAGE_LIMIT))
	parsedUrl.RawQuery = queryParams.Encode()

	body, err := rc.get(ctx, parsedUrl.String(), true)
	if err != nil {
		return nil, err
	}

	var listing models.RedditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to decode search listing: %w", err)
	}

	threads := make([]models.Thread, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		threads = append(threads, models.Thread{
			ID:           child.Data.ID,
			Title:        child.Data.Title,
			CommentCount: child.Data.NumComments,
			URL:          "https://www.reddit.com" + child.Data.Permalink,
		})
	}

	return threads, nil
}

// FetchThreadComments retrieves the full comment tree for one thread,
// flattening nested replies into a single slice of raw comments.
func (rc *RedditClient) FetchThreadComments(ctx context.Context, thread models.Thread) ([]models.RawComment, error) {
	parsedUrl, err := url.Parse(fmt.Sprintf("%s/comments/%s", REDDIT_API_URL, thread.ID))
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("limit", strconv.Itoa(COMMENT_PAGE_LIMIT))
	parsedUrl.RawQuery = queryParams.Encode()

	body, err := rc.get(ctx, parsedUrl.String(), true)
	if err != nil {
		return nil, err
	}

	// The comments endpoint answers with [postListing, commentListing].
	var listings []models.RedditListing
	if err := json.Unmarshal(body, &listings); err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to decode comment listings: %w", err)
	}
	if len(listings) < 2 {
		return nil, fmt.Errorf("[RedditClient] Unexpected comment response shape for thread %s", thread.ID)
	}

	var comments []models.RawComment
	collectCommentNodes(listings[1].Data.Children, thread.URL, &comments)
	return comments, nil
}

// collectCommentNodes walks a comment subtree depth-first. Nodes that are not
// comments ("more" stubs) and reply blobs that fail to decode are skipped.
func collectCommentNodes(children []models.RedditChild, sourceURL string, out *[]models.RawComment) {
	for _, child := range children {
		if child.Kind != "t1" {
			continue
		}

		*out = append(*out, models.RawComment{
			Body:       child.Data.Body,
			CreatedUTC: child.Data.CreatedUTC,
			SourceURL:  sourceURL,
		})

		// Leaves carry replies as "" instead of a nested listing.
		if len(child.Data.Replies) == 0 || string(child.Data.Replies) == `""` {
			continue
		}
		var replies models.RedditListing
		if err := json.Unmarshal(child.Data.Replies, &replies); err != nil {
			slog.Debug("[RedditClient] Skipping undecodable reply blob",
				slog.String("source", sourceURL))
			continue
		}
		collectCommentNodes(replies.Data.Children, sourceURL, out)
	}
}

func (rc *RedditClient) get(ctx context.Context, rawURL string, allowRefresh bool) ([]byte, error) {
	if err := rc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusUnauthorized:
		if allowRefresh {
			slog.Warn("[RedditClient] Token expired - Refreshing and Retrying...")
			rc.RefreshClient()
			return rc.get(ctx, rawURL, false)
		}
		return nil, fmt.Errorf("[RedditClient] Unauthorized after token refresh")
	default:
		return nil, fmt.Errorf("[RedditClient] Unexpected status %d for %s", resp.StatusCode, rawURL)
	}
}
