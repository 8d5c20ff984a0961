package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/ocarel/pocketfolio"
	"github.com/ocarel/pocketfolio/renderer"
)

type refreshNewsCmd struct{}

func (*refreshNewsCmd) Name() string     { return "fetch" }
func (*refreshNewsCmd) Synopsis() string { return "regenerate the news feed" }
func (*refreshNewsCmd) Usage() string {
	return `pfo fetch

  Regenerates the news feed from the bundled sample payload and prunes
  articles past the retention window. No network call is made; this is a
  purely local operation. Bookmarks are preserved.
`
}

func (p *refreshNewsCmd) SetFlags(f *flag.FlagSet) {}

func (p *refreshNewsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	now := time.Now()
	feed := store.LoadFeed(now)
	if err := feed.Refresh(now); err != nil {
		return fail(err)
	}
	pruned := feed.Prune(now, store.LoadPreferences().NewsRetention())
	if err := store.SaveFeed(feed); err != nil {
		return fail(err)
	}
	fmt.Printf("Feed refreshed: %d articles", feed.Len())
	if pruned > 0 {
		fmt.Printf(", %d pruned", pruned)
	}
	fmt.Println(".")
	return subcommands.ExitSuccess
}

type listNewsCmd struct {
	category   string
	bookmarked bool
}

func (*listNewsCmd) Name() string     { return "news" }
func (*listNewsCmd) Synopsis() string { return "list news articles" }
func (*listNewsCmd) Usage() string {
	return `pfo news [-c <category>] [-b]

  Lists articles newest first, optionally filtered by category and down to
  the bookmarked ones. Both filters may be combined.
`
}

func (p *listNewsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Only list this news category.")
	f.BoolVar(&p.bookmarked, "b", false, "Only list bookmarked articles.")
}

func (p *listNewsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	feed := store.LoadFeed(time.Now())

	var filters []func(pocketfolio.Article) bool
	title := "News"
	if p.category != "" {
		category, err := pocketfolio.ParseNewsCategory(p.category)
		if err != nil {
			return fail(err)
		}
		filters = append(filters, pocketfolio.ByNewsCategory(category))
		title = fmt.Sprintf("News: %s", category)
	}
	if p.bookmarked {
		filters = append(filters, pocketfolio.BookmarkedOnly)
		title = "Bookmarked " + title
	}

	var articles []pocketfolio.Article
	for a := range feed.Articles(pocketfolio.AllOf(filters...)) {
		articles = append(articles, a)
	}
	printMarkdown(renderer.NewsMarkdown(title, articles))
	return subcommands.ExitSuccess
}

type trendingCmd struct {
	top int
}

func (*trendingCmd) Name() string     { return "trending" }
func (*trendingCmd) Synopsis() string { return "show trending topics across article titles" }
func (*trendingCmd) Usage() string {
	return `pfo trending [-top <n>]

  Ranks the most frequent terms across the current article titles.
`
}

func (p *trendingCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.top, "top", 10, "Number of topics to show.")
}

func (p *trendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	feed := store.LoadFeed(time.Now())
	printMarkdown(renderer.TrendingMarkdown(feed.TrendingTopics(p.top)))
	return subcommands.ExitSuccess
}

type bookmarkCmd struct {
	remove bool
}

func (*bookmarkCmd) Name() string     { return "bookmark" }
func (*bookmarkCmd) Synopsis() string { return "bookmark an article by id" }
func (*bookmarkCmd) Usage() string {
	return `pfo bookmark [-rm] <article-id>

  Sets (or with -rm clears) the bookmark flag of an article. Bookmarks are
  persisted separately and survive a feed refresh.
`
}

func (p *bookmarkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.remove, "rm", false, "Clear the bookmark instead of setting it.")
}

func (p *bookmarkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("want exactly one article id, got %d arguments", f.NArg()))
	}
	id := f.Arg(0)

	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	feed := store.LoadFeed(time.Now())
	if err := feed.Bookmark(id, !p.remove); err != nil {
		return fail(err)
	}
	if err := store.SaveFeed(feed); err != nil {
		return fail(err)
	}
	if p.remove {
		fmt.Printf("Removed bookmark on %s\n", id)
	} else {
		fmt.Printf("Bookmarked %s\n", id)
	}
	return subcommands.ExitSuccess
}
