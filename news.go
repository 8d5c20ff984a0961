package pocketfolio

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"time"
)

// NewsCategory is the closed set of news classification tags.
type NewsCategory string

const (
	NewsMarkets         NewsCategory = "markets"
	NewsEconomy         NewsCategory = "economy"
	NewsCrypto          NewsCategory = "crypto"
	NewsPersonalFinance NewsCategory = "personal-finance"
	NewsTechnology      NewsCategory = "technology"
	NewsWorld           NewsCategory = "world"
)

// NewsCategories returns all news categories in display order.
func NewsCategories() []NewsCategory {
	return []NewsCategory{
		NewsMarkets, NewsEconomy, NewsCrypto,
		NewsPersonalFinance, NewsTechnology, NewsWorld,
	}
}

// ParseNewsCategory parses a news category name.
func ParseNewsCategory(s string) (NewsCategory, error) {
	c := NewsCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range NewsCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown news category: %q", s)
}

// Article is a single news item. The bookmark flag is the only field ever
// mutated in place.
type Article struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Source      string       `json:"source"`
	PublishedAt time.Time    `json:"publishedAt"`
	Category    NewsCategory `json:"category"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Link        string       `json:"link,omitempty"`
	Bookmarked  bool         `json:"bookmarked,omitempty"`
}

// Feed is the local news collection. Articles are kept newest first.
type Feed struct {
	articles []Article
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{articles: make([]Article, 0)}
}

// NewFeedOf creates a feed over the given articles.
func NewFeedOf(articles []Article) *Feed {
	f := &Feed{articles: articles}
	f.stableSort()
	return f
}

// Len returns the number of articles in the feed.
func (f *Feed) Len() int { return len(f.articles) }

// Refresh regenerates the feed from the bundled sample payload. There is no
// live endpoint behind this: "fetching" the news is a purely local operation.
// Bookmark flags of articles that reappear are preserved.
func (f *Feed) Refresh(now time.Time) error {
	fresh, err := sampleArticles(now)
	if err != nil {
		return fmt.Errorf("could not regenerate news feed: %w", err)
	}
	bookmarked := make(map[string]bool)
	for _, a := range f.articles {
		if a.Bookmarked {
			bookmarked[a.ID] = true
		}
	}
	for i := range fresh {
		fresh[i].Bookmarked = bookmarked[fresh[i].ID]
	}
	f.articles = fresh
	f.stableSort()
	return nil
}

// Article returns the article with the given id.
func (f *Feed) Article(id string) (Article, bool) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// Bookmark sets the bookmark flag of an article in place.
func (f *Feed) Bookmark(id string, on bool) error {
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.articles[i].Bookmarked = on
			return nil
		}
	}
	return fmt.Errorf("no article with id %q", id)
}

// BookmarkIDs returns the ids of all bookmarked articles, sorted.
func (f *Feed) BookmarkIDs() []string {
	var ids []string
	for _, a := range f.articles {
		if a.Bookmarked {
			ids = append(ids, a.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// ApplyBookmarks re-applies persisted bookmark ids to matching articles.
// Ids without a matching article are ignored; they get pruned on the next
// save.
func (f *Feed) ApplyBookmarks(ids []string) {
	marked := make(map[string]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}
	for i := range f.articles {
		if marked[f.articles[i].ID] {
			f.articles[i].Bookmarked = true
		}
	}
}

// Articles iterates over articles newest first, optionally filtered.
func (f *Feed) Articles(filters ...func(Article) bool) iter.Seq[Article] {
	return func(yield func(Article) bool) {
		for _, a := range f.articles {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(a) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// ByNewsCategory returns a predicate that filters articles by category.
func ByNewsCategory(c NewsCategory) func(Article) bool {
	return func(a Article) bool { return a.Category == c }
}

// BookmarkedOnly is a predicate that accepts only bookmarked articles.
func BookmarkedOnly(a Article) bool { return a.Bookmarked }

// AllOf combines predicates so an article must satisfy every one. With no
// predicates it accepts everything.
func AllOf(filters ...func(Article) bool) func(Article) bool {
	return func(a Article) bool {
		for _, filter := range filters {
			if !filter(a) {
				return false
			}
		}
		return true
	}
}

// All returns a copy of all articles newest first.
func (f *Feed) All() []Article {
	out := make([]Article, len(f.articles))
	copy(out, f.articles)
	return out
}

// Prune drops articles older than the retention window, keeping bookmarked
// ones regardless of age. It returns the number of articles dropped.
func (f *Feed) Prune(now time.Time, retention time.Duration) int {
	cutoff := now.Add(-retention)
	kept := make([]Article, 0, len(f.articles))
	for _, a := range f.articles {
		if a.Bookmarked || !a.PublishedAt.Before(cutoff) {
			kept = append(kept, a)
		}
	}
	dropped := len(f.articles) - len(kept)
	f.articles = kept
	return dropped
}

func (f *Feed) stableSort() {
	sort.SliceStable(f.articles, func(i, j int) bool {
		if !f.articles[i].PublishedAt.Equal(f.articles[j].PublishedAt) {
			return f.articles[i].PublishedAt.After(f.articles[j].PublishedAt)
		}
		return f.articles[i].ID < f.articles[j].ID
	})
}

// Topic is a trending term with its occurrence count over article titles.
type Topic struct {
	Term  string
	Count int
}

// stopWords are excluded from trending-topic counting.
var stopWords = map[string]bool{
	"a": true, "after": true, "again": true, "against": true,
	"and": true, "are": true, "as": true, "at": true, "back": true,
	"but": true, "by": true, "down": true, "for": true, "from": true,
	"in": true, "is": true, "it": true, "its": true, "much": true,
	"new": true, "no": true, "now": true, "of": true, "on": true,
	"one": true, "or": true, "out": true, "over": true, "that": true,
	"the": true, "their": true, "this": true, "to": true, "two": true,
	"up": true, "with": true, "year": true, "how": true,
}

// TrendingTopics ranks the most frequent words across article titles,
// ignoring stop words and short tokens. Ties break alphabetically.
func (f *Feed) TrendingTopics(n int) []Topic {
	counts := make(map[string]int)
	for _, a := range f.articles {
		for _, raw := range strings.Fields(strings.ToLower(a.Title)) {
			word := strings.Trim(raw, ".,:;!?'\"()")
			if len(word) < 3 || stopWords[word] {
				continue
			}
			counts[word]++
		}
	}
	topics := make([]Topic, 0, len(counts))
	for term, count := range counts {
		topics = append(topics, Topic{Term: term, Count: count})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Term < topics[j].Term
	})
	if n > 0 && len(topics) > n {
		topics = topics[:n]
	}
	return topics
}
