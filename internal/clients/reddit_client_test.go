package clients

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/spacesedan/lexitrend/internal/models"
)

const commentTreeJSON = `{
	"kind": "Listing",
	"data": {
		"children": [
			{
				"kind": "t1",
				"data": {
					"id": "c1",
					"body": "top level comment",
					"created_utc": 1748779200.0,
					"replies": {
						"kind": "Listing",
						"data": {
							"children": [
								{
									"kind": "t1",
									"data": {
										"id": "c2",
										"body": "nested reply",
										"created_utc": 1748782800.0,
										"replies": ""
									}
								}
							]
						}
					}
				}
			},
			{
				"kind": "more",
				"data": {"id": "m1"}
			}
		]
	}
}`

func TestCollectCommentNodes_FlattensReplies(t *testing.T) {
	var listing models.RedditListing
	require.NoError(t, json.Unmarshal([]byte(commentTreeJSON), &listing))

	var out []models.RawComment
	collectCommentNodes(listing.Data.Children, "https://www.reddit.com/r/x/1", &out)

	require.Len(t, out, 2, `"more" stubs are skipped, nested replies are kept`)
	assert.Equal(t, "top level comment", out[0].Body)
	assert.Equal(t, "nested reply", out[1].Body)
	for _, c := range out {
		assert.Equal(t, "https://www.reddit.com/r/x/1", c.SourceURL)
		assert.NotZero(t, c.CreatedUTC)
	}
}

// Parallel thread fetches share one client; a 401 refresh on one goroutine
// must not race with in-flight reads on the others. Run with -race.
func TestRefreshClient_ConcurrentWithReads(t *testing.T) {
	rc := &RedditClient{
		Config: &clientcredentials.Config{TokenURL: REDDIT_AUTH_URL},
		Client: &http.Client{},
		mu:     &sync.Mutex{},
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NotNil(t, rc.httpClient())
			}
		}()
	}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rc.RefreshClient()
			}
		}()
	}
	wg.Wait()
}

func TestCollectCommentNodes_UndecodableRepliesSkipped(t *testing.T) {
	children := []models.RedditChild{
		{
			Kind: "t1",
			Data: models.RedditChildData{
				ID:         "c1",
				Body:       "still kept",
				CreatedUTC: 1748779200,
				Replies:    json.RawMessage(`42`),
			},
		},
	}

	var out []models.RawComment
	collectCommentNodes(children, "u", &out)

	require.Len(t, out, 1)
	assert.Equal(t, "still kept", out[0].Body)
}
