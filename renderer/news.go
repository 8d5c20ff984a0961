package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ocarel/pocketfolio"
)

// NewsMarkdown renders articles newest first.
func NewsMarkdown(title string, articles []pocketfolio.Article) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(articles) == 0 {
		doc.PlainText("No articles.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Published", "Title", "Source", "Category", "Id"}}
	for _, a := range articles {
		mark := ""
		if a.Bookmarked {
			mark = "* "
		}
		table.Rows = append(table.Rows, []string{
			a.PublishedAt.Format("2006-01-02 15:04"),
			mark + a.Title, a.Source, string(a.Category), a.ID,
		})
	}
	doc.Table(table)
	doc.PlainText("Bookmarked articles are marked with *.")
	return doc.String()
}

// TrendingMarkdown renders the ranked trending terms.
func TrendingMarkdown(topics []pocketfolio.Topic) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trending Topics")
	table := md.TableSet{Header: []string{"Rank", "Term", "Mentions"}}
	for i, t := range topics {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1), t.Term, fmt.Sprintf("%d", t.Count),
		})
	}
	doc.Table(table)
	return doc.String()
}
