package pocketfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Document file names inside the data directory. Every mutation rewrites the
// whole document; there is no incremental update and no transaction log.
const (
	expensesFile    = "expenses.json"
	budgetsFile     = "budgets.json"
	portfolioFile   = "portfolio.json"
	newsFile        = "news.json"
	bookmarksFile   = "bookmarks.json"
	preferencesFile = "preferences.json"
)

// Store persists the application state as JSON documents in a single data
// directory. It is a single-user, single-writer store: there is no locking
// and no protection against concurrent writers beyond the atomic-ish rename.
type Store struct {
	dir string
	log zerolog.Logger
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

// readDoc decodes one JSON document into v.
func (s *Store) readDoc(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not decode %s: %w", name, err)
	}
	return nil
}

// writeDoc serializes v and replaces the document through a temp file and a
// rename, so a crash mid-write never leaves a half document behind.
func (s *Store) writeDoc(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace %s: %w", name, err)
	}
	return nil
}

// fallback logs why a document could not be read. A missing file is the
// normal first-run case and logs quieter than a corrupt one.
func (s *Store) fallback(name string, err error, to string) {
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("file", name).Msgf("no document yet, using %s", to)
		return
	}
	s.log.Warn().Err(err).Str("file", name).Msgf("unreadable document, using %s", to)
}

// LoadExpenses reads the expense book, falling back to the bundled sample
// expenses when the document is missing or unreadable.
func (s *Store) LoadExpenses() *ExpenseBook {
	var expenses []Expense
	if err := s.readDoc(expensesFile, &expenses); err != nil {
		s.fallback(expensesFile, err, "sample expenses")
		return NewExpenseBookOf(SampleExpenses())
	}
	return NewExpenseBookOf(expenses)
}

// SaveExpenses rewrites the expense document.
func (s *Store) SaveExpenses(b *ExpenseBook) error {
	return s.writeDoc(expensesFile, b.All())
}

// LoadBudgets reads the budget book, falling back to an empty book.
func (s *Store) LoadBudgets() *BudgetBook {
	var budgets []Budget
	if err := s.readDoc(budgetsFile, &budgets); err != nil {
		s.fallback(budgetsFile, err, "an empty budget book")
		return NewBudgetBook()
	}
	return NewBudgetBookOf(budgets)
}

// SaveBudgets rewrites the budget document.
func (s *Store) SaveBudgets(b *BudgetBook) error {
	return s.writeDoc(budgetsFile, b.All())
}

// LoadPortfolio reads the portfolio, falling back to the bundled sample
// portfolio when the document is missing or unreadable.
func (s *Store) LoadPortfolio() *Portfolio {
	var p Portfolio
	if err := s.readDoc(portfolioFile, &p); err != nil {
		s.fallback(portfolioFile, err, "the sample portfolio")
		return SamplePortfolio()
	}
	if p.TargetAllocation == nil {
		p.TargetAllocation = make(map[AssetType]Percent)
	}
	return &p
}

// SavePortfolio rewrites the portfolio document.
func (s *Store) SavePortfolio(p *Portfolio) error {
	return s.writeDoc(portfolioFile, p)
}

// LoadFeed reads the news document and re-applies the separately persisted
// bookmark ids. A missing or unreadable news document falls back to a fresh
// sample feed; bookmarks still apply on top of it.
func (s *Store) LoadFeed(now time.Time) *Feed {
	var articles []Article
	feed := NewFeed()
	if err := s.readDoc(newsFile, &articles); err != nil {
		s.fallback(newsFile, err, "a fresh sample feed")
		if rerr := feed.Refresh(now); rerr != nil {
			s.log.Warn().Err(rerr).Msg("could not build sample feed")
		}
	} else {
		feed = NewFeedOf(articles)
	}

	var ids []string
	if err := s.readDoc(bookmarksFile, &ids); err != nil {
		s.fallback(bookmarksFile, err, "no bookmarks")
	}
	feed.ApplyBookmarks(ids)
	return feed
}

// SaveFeed rewrites the news document and the bookmark document. Bookmark
// ids live in their own file keyed by article id, so a later refresh of the
// feed cannot lose them.
func (s *Store) SaveFeed(f *Feed) error {
	if err := s.writeDoc(newsFile, f.All()); err != nil {
		return err
	}
	ids := f.BookmarkIDs()
	if ids == nil {
		ids = []string{}
	}
	return s.writeDoc(bookmarksFile, ids)
}

// LoadPreferences reads the settings, falling back to defaults. The document
// decodes on top of the defaults, so keys absent from the file keep their
// default value; whatever is read gets normalized so out-of-range values
// never propagate.
func (s *Store) LoadPreferences() Preferences {
	p := DefaultPreferences()
	if err := s.readDoc(preferencesFile, &p); err != nil {
		s.fallback(preferencesFile, err, "default preferences")
		return DefaultPreferences()
	}
	return p.Normalize()
}

// SavePreferences rewrites the settings document.
func (s *Store) SavePreferences(p Preferences) error {
	return s.writeDoc(preferencesFile, p.Normalize())
}
