package normalizer

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/lexitrend/internal/models"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
)

// Bodies Reddit substitutes for moderated or deleted comments.
var deletedBodies = map[string]struct{}{
	"[deleted]": {},
	"[removed]": {},
}

// Normalize filters the merged raw comments down to usable rows: non-empty
// plain text plus a parsed UTC timestamp. Row-level problems only drop the
// row; ending up with zero usable comments is a structural error.
func Normalize(raw []models.RawComment) ([]models.Comment, error) {
	comments := make([]models.Comment, 0, len(raw))
	dropped := 0

	for _, rc := range raw {
		text := ConvertMarkdownToText(rc.Body)
		if text == "" || isDeleted(rc.Body) {
			dropped++
			continue
		}
		if rc.CreatedUTC <= 0 {
			dropped++
			continue
		}

		comments = append(comments, models.Comment{
			Text:      text,
			Timestamp: time.Unix(int64(rc.CreatedUTC), 0).UTC(),
			SourceURL: rc.SourceURL,
		})
	}

	if len(comments) == 0 {
		return nil, fmt.Errorf("[Normalizer] No usable comments after filtering (%d raw, %d dropped)", len(raw), dropped)
	}

	slog.Info("[Normalizer] Normalized comments",
		slog.Int("raw", len(raw)),
		slog.Int("kept", len(comments)),
		slog.Int("dropped", dropped))

	return comments, nil
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText renders Reddit markdown and strips the resulting
// HTML tags and any bare links, collapsing whitespace.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := tagPattern.ReplaceAllString(string(output), " ")
	plain = RemoveLinks(plain)

	return strings.Join(strings.Fields(plain), " ")
}

func isDeleted(body string) bool {
	_, ok := deletedBodies[strings.TrimSpace(body)]
	return ok
}
