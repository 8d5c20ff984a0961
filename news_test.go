package pocketfolio

import (
	"testing"
	"time"
)

var newsNow = time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

func newTestFeed(t *testing.T) *Feed {
	t.Helper()
	feed := NewFeed()
	if err := feed.Refresh(newsNow); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	return feed
}

func TestFeed_Refresh(t *testing.T) {
	feed := newTestFeed(t)
	if feed.Len() == 0 {
		t.Fatal("Refresh produced an empty feed")
	}
	for _, a := range feed.All() {
		if a.ID == "" {
			t.Errorf("article %q has no id", a.Title)
		}
		if a.PublishedAt.After(newsNow) {
			t.Errorf("article %q published in the future: %s", a.Title, a.PublishedAt)
		}
		if _, err := ParseNewsCategory(string(a.Category)); err != nil {
			t.Errorf("article %q: %v", a.Title, err)
		}
	}
}

func TestFeed_RefreshStableIDs(t *testing.T) {
	feed := newTestFeed(t)
	first := feed.All()
	if err := feed.Refresh(newsNow.Add(time.Hour)); err != nil {
		t.Fatalf("second Refresh failed: %v", err)
	}
	second := feed.All()
	if len(first) != len(second) {
		t.Fatalf("article count changed across refreshes: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("article id not stable across refreshes: %q vs %q", first[i].ID, second[i].ID)
		}
	}
}

func TestFeed_Order(t *testing.T) {
	feed := newTestFeed(t)
	all := feed.All()
	for i := 1; i < len(all); i++ {
		if all[i].PublishedAt.After(all[i-1].PublishedAt) {
			t.Fatalf("feed not newest first: %s before %s", all[i-1].PublishedAt, all[i].PublishedAt)
		}
	}
}

func TestFeed_Bookmark(t *testing.T) {
	feed := newTestFeed(t)
	id := feed.All()[2].ID

	if err := feed.Bookmark(id, true); err != nil {
		t.Fatalf("Bookmark failed: %v", err)
	}
	a, _ := feed.Article(id)
	if !a.Bookmarked {
		t.Error("article not bookmarked after Bookmark(id, true)")
	}
	if ids := feed.BookmarkIDs(); len(ids) != 1 || ids[0] != id {
		t.Errorf("BookmarkIDs = %v, want [%s]", ids, id)
	}

	if err := feed.Bookmark(id, false); err != nil {
		t.Fatalf("un-Bookmark failed: %v", err)
	}
	if ids := feed.BookmarkIDs(); len(ids) != 0 {
		t.Errorf("BookmarkIDs after removal = %v, want empty", ids)
	}

	if err := feed.Bookmark("missing", true); err == nil {
		t.Error("Bookmark with unknown id must fail")
	}
}

func TestFeed_RefreshKeepsBookmarks(t *testing.T) {
	feed := newTestFeed(t)
	id := feed.All()[0].ID
	feed.Bookmark(id, true)

	if err := feed.Refresh(newsNow.Add(24 * time.Hour)); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	a, ok := feed.Article(id)
	if !ok || !a.Bookmarked {
		t.Errorf("bookmark lost across Refresh: %v, %v", a.Bookmarked, ok)
	}
}

func TestFeed_ApplyBookmarks(t *testing.T) {
	feed := newTestFeed(t)
	id := feed.All()[1].ID
	feed.ApplyBookmarks([]string{id, "stale-id"})

	if ids := feed.BookmarkIDs(); len(ids) != 1 || ids[0] != id {
		t.Errorf("BookmarkIDs = %v, want [%s]; stale ids must be dropped", ids, id)
	}
}

func TestFeed_Filters(t *testing.T) {
	feed := newTestFeed(t)
	for a := range feed.Articles(ByNewsCategory(NewsCrypto)) {
		if a.Category != NewsCrypto {
			t.Errorf("ByNewsCategory(crypto) yielded %q article %q", a.Category, a.ID)
		}
	}

	count := 0
	for range feed.Articles() {
		count++
	}
	if count != feed.Len() {
		t.Errorf("unfiltered Articles yielded %d, want %d", count, feed.Len())
	}

	id := feed.All()[0].ID
	feed.Bookmark(id, true)
	count = 0
	for a := range feed.Articles(BookmarkedOnly) {
		if a.ID != id {
			t.Errorf("BookmarkedOnly yielded unbookmarked article %q", a.ID)
		}
		count++
	}
	if count != 1 {
		t.Errorf("BookmarkedOnly yielded %d articles, want 1", count)
	}
}

func TestFeed_AllOf(t *testing.T) {
	feed := NewFeedOf([]Article{
		{ID: "c1", Title: "coins up", Category: NewsCrypto, PublishedAt: newsNow, Bookmarked: true},
		{ID: "c2", Title: "coins down", Category: NewsCrypto, PublishedAt: newsNow},
		{ID: "m1", Title: "stocks flat", Category: NewsMarkets, PublishedAt: newsNow, Bookmarked: true},
	})

	// both conditions must hold, not either one
	count := 0
	for a := range feed.Articles(AllOf(ByNewsCategory(NewsCrypto), BookmarkedOnly)) {
		if a.ID != "c1" {
			t.Errorf("combined filter yielded %q, want only c1", a.ID)
		}
		count++
	}
	if count != 1 {
		t.Errorf("combined filter yielded %d articles, want 1", count)
	}

	// an empty conjunction accepts everything
	count = 0
	for range feed.Articles(AllOf()) {
		count++
	}
	if count != feed.Len() {
		t.Errorf("AllOf() yielded %d articles, want %d", count, feed.Len())
	}
}

func TestFeed_Prune(t *testing.T) {
	old := Article{ID: "old", Title: "old", PublishedAt: newsNow.Add(-40 * 24 * time.Hour), Category: NewsWorld}
	kept := Article{ID: "kept", Title: "kept", PublishedAt: newsNow.Add(-40 * 24 * time.Hour), Category: NewsWorld, Bookmarked: true}
	fresh := Article{ID: "fresh", Title: "fresh", PublishedAt: newsNow.Add(-time.Hour), Category: NewsWorld}
	feed := NewFeedOf([]Article{old, kept, fresh})

	dropped := feed.Prune(newsNow, 30*24*time.Hour)
	if dropped != 1 {
		t.Fatalf("Prune dropped %d articles, want 1", dropped)
	}
	if _, ok := feed.Article("old"); ok {
		t.Error("stale article survived Prune")
	}
	if _, ok := feed.Article("kept"); !ok {
		t.Error("bookmarked article must survive Prune regardless of age")
	}
	if _, ok := feed.Article("fresh"); !ok {
		t.Error("fresh article must survive Prune")
	}
}

func TestFeed_TrendingTopics(t *testing.T) {
	feed := NewFeedOf([]Article{
		{ID: "1", Title: "Bitcoin rallies as bitcoin funds see inflows", PublishedAt: newsNow},
		{ID: "2", Title: "Bitcoin miners expand", PublishedAt: newsNow},
		{ID: "3", Title: "Markets wobble, rates in focus", PublishedAt: newsNow},
		{ID: "4", Title: "Rates outlook splits markets", PublishedAt: newsNow},
	})

	topics := feed.TrendingTopics(3)
	if len(topics) != 3 {
		t.Fatalf("TrendingTopics(3) returned %d topics", len(topics))
	}
	if topics[0].Term != "bitcoin" || topics[0].Count != 3 {
		t.Errorf("top topic = %+v, want bitcoin x3", topics[0])
	}
	// markets and rates both occur twice; alphabetical tie-break
	if topics[1].Term != "markets" || topics[2].Term != "rates" {
		t.Errorf("tie-break order = %q, %q, want markets, rates", topics[1].Term, topics[2].Term)
	}
	for _, topic := range topics {
		if stopWords[topic.Term] || len(topic.Term) < 3 {
			t.Errorf("topic %q should have been filtered", topic.Term)
		}
	}
}
