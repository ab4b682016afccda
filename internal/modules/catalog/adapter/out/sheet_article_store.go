package out

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"paperdrill/internal/modules/catalog/domain"
	catalogout "paperdrill/internal/modules/catalog/port/out"
	apperrors "paperdrill/internal/platform/errors"
	"paperdrill/internal/platform/sheet"
)

const TableName = "articles"

var Columns = []string{"id", "title", "tags", "status", "purpose", "methods", "results", "memo", "stats", "game_data"}

type SheetArticleStore struct {
	table sheet.Table
}

func NewSheetArticleStore(ctx context.Context, book sheet.Book) (catalogout.ArticleStore, error) {
	table, err := book.Table(ctx, TableName, Columns)
	if err != nil {
		return nil, err
	}
	return &SheetArticleStore{table: table}, nil
}

func (s *SheetArticleStore) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := s.table.List(ctx)
	if err != nil {
		return nil, err
	}
	articles := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		article, err := decodeArticle(row)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (s *SheetArticleStore) Upsert(ctx context.Context, article domain.Article) error {
	stats, err := encodeJSON(article.Stats)
	if err != nil {
		return fmt.Errorf("encode stats for %s: %w", article.ID, err)
	}
	game, err := encodeJSON(article.GameData)
	if err != nil {
		return fmt.Errorf("encode game data for %s: %w", article.ID, err)
	}
	return s.table.Upsert(ctx, "id", sheet.Row{
		"id":        article.ID,
		"title":     article.Title,
		"tags":      domain.JoinTags(article.Tags),
		"status":    string(article.Status),
		"stats":     stats,
		"game_data": game,
	})
}

func (s *SheetArticleStore) Complete(ctx context.Context, id string, reflection domain.Reflection) error {
	return s.table.Update(ctx, "id", id, sheet.Row{
		"purpose": reflection.Purpose,
		"methods": reflection.Methods,
		"results": reflection.Results,
		"memo":    reflection.Memo,
		"status":  string(domain.StatusDone),
	})
}

func decodeArticle(row sheet.Row) (domain.Article, error) {
	article := domain.Article{
		ID:      row["id"],
		Title:   row["title"],
		Tags:    domain.ParseTags(row["tags"]),
		Status:  domain.ParseStatus(row["status"]),
		Purpose: row["purpose"],
		Methods: row["methods"],
		Results: row["results"],
		Memo:    row["memo"],
	}
	if raw := strings.TrimSpace(row["stats"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &article.Stats); err != nil {
			return domain.Article{}, fmt.Errorf("%w: stats of article %s: %v", apperrors.ErrMalformedPayload, article.ID, err)
		}
	}
	if raw := strings.TrimSpace(row["game_data"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &article.GameData); err != nil {
			return domain.Article{}, fmt.Errorf("%w: game data of article %s: %v", apperrors.ErrMalformedPayload, article.ID, err)
		}
	}
	return article, nil
}

func encodeJSON(v any) (string, error) {
	switch x := v.(type) {
	case *domain.Stats:
		if x == nil {
			return "", nil
		}
	case []domain.Sentence:
		if x == nil {
			return "", nil
		}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
