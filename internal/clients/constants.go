package clients

import "time"

const (
	REDDIT_AUTH_URL = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL  = "https://oauth.reddit.com"
	USER_AGENT      = "lexitrend-bot/0.1 (+https://github.com/spacesedan/lexitrend)"

	SEARCH_PAGE_LIMIT  = 100
	COMMENT_PAGE_LIMIT = 500

	REQUEST_INTERVAL = time.Second
	REQUEST_BURST    = 2
)
