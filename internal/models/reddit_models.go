package models

import "encoding/json"

// Listing shapes returned by the Reddit JSON API. Search results come back as
// a single listing; the comments endpoint returns an array of two listings
// (the post itself, then the comment tree).

type RedditListing struct {
	Kind string            `json:"kind"`
	Data RedditListingData `json:"data"`
}

type RedditListingData struct {
	After    string        `json:"after"`
	Children []RedditChild `json:"children"`
}

type RedditChild struct {
	Kind string          `json:"kind"`
	Data RedditChildData `json:"data"`
}

type RedditChildData struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	NumComments int     `json:"num_comments"`
	Body        string  `json:"body"`
	CreatedUTC  float64 `json:"created_utc"`

	// Replies is a nested listing for comment nodes, but the API encodes
	// a leaf as the empty string instead of null, so it cannot be decoded
	// eagerly into RedditListing.
	Replies json.RawMessage `json:"replies,omitempty"`
}
