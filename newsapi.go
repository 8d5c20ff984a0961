package pocketfolio

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file mirrors the JSON shape of a third-party headline API. It is a
// placeholder for a future integration: the shape is only ever decoded
// against the bundled sample payload below, never against a live endpoint.

// APIResponse is the top-level shape of a headline API response.
type APIResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []APIArticle `json:"articles"`
}

// APIArticle is the wire shape of a single headline.
type APIArticle struct {
	Source      APISource `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Category    string    `json:"category"`
}

// APISource identifies the publisher of a headline.
type APISource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

//go:embed sample_news.json
var sampleNewsPayload []byte

// sampleArticles decodes the bundled sample payload into articles. Publish
// timestamps are restamped relative to 'now', spread over the previous two
// days, so a refresh always yields a fresh-looking feed.
func sampleArticles(now time.Time) ([]Article, error) {
	var jobj any
	if err := json.Unmarshal(sampleNewsPayload, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse sample news payload: %w", err)
	}

	status, err := jsonpath.Get("$.status", jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read status from sample news payload: %w", err)
	}
	if status != "ok" {
		return nil, fmt.Errorf("sample news payload status is %v, want ok", status)
	}

	jval, err := jsonpath.Get("$.articles", jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read articles from sample news payload: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("sample news articles is not a list: %T", jval)
	}

	articles := make([]Article, 0, len(jlist))
	for i, item := range jlist {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("sample news article %d is not an object: %T", i, item)
		}
		title, _ := obj["title"].(string)
		if title == "" {
			return nil, fmt.Errorf("sample news article %d has no title", i)
		}
		category, err := ParseNewsCategory(str(obj, "category"))
		if err != nil {
			return nil, fmt.Errorf("sample news article %d: %w", i, err)
		}
		source := "unknown"
		if jsource, ok := obj["source"].(map[string]any); ok {
			if name, ok := jsource["name"].(string); ok && name != "" {
				source = name
			}
		}
		articles = append(articles, Article{
			ID:          slugify(title),
			Title:       title,
			Summary:     str(obj, "description"),
			Source:      source,
			PublishedAt: now.Add(-time.Duration(i) * 5 * time.Hour),
			Category:    category,
			ImageURL:    str(obj, "urlToImage"),
			Link:        str(obj, "url"),
		})
	}
	return articles, nil
}

func str(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// slugify derives a stable article id from its title, so bookmark flags
// survive a feed refresh.
func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
