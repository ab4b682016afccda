package out

import (
	"context"
	"strconv"
	"strings"

	"paperdrill/internal/modules/ledger/domain"
	ledgerout "paperdrill/internal/modules/ledger/port/out"
	"paperdrill/internal/platform/sheet"
)

const TableName = "log"

var Columns = []string{"date", "article_id", "title", "count_sentences", "count_words"}

type SheetEntryStore struct {
	table sheet.Table
}

func NewSheetEntryStore(ctx context.Context, book sheet.Book) (ledgerout.EntryStore, error) {
	table, err := book.Table(ctx, TableName, Columns)
	if err != nil {
		return nil, err
	}
	return &SheetEntryStore{table: table}, nil
}

func (s *SheetEntryStore) Append(ctx context.Context, entry domain.Entry) error {
	return s.table.Append(ctx, sheet.Row{
		"date":            entry.Date,
		"article_id":      entry.ArticleID,
		"title":           entry.Title,
		"count_sentences": strconv.Itoa(entry.Sentences),
		"count_words":     strconv.Itoa(entry.Words),
	})
}

func (s *SheetEntryStore) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.table.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.Entry{
			Date:      strings.TrimSpace(row["date"]),
			ArticleID: row["article_id"],
			Title:     row["title"],
			Sentences: count(row["count_sentences"]),
			Words:     count(row["count_words"]),
		})
	}
	return entries, nil
}

// count reads a hand-editable cell; blanks and junk are zero.
func count(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
