package service

import (
	"context"
	"fmt"
	"strings"

	"paperdrill/internal/modules/catalog/domain"
	catalogout "paperdrill/internal/modules/catalog/port/out"
	apperrors "paperdrill/internal/platform/errors"
	"paperdrill/internal/platform/slug"
)

type CatalogService struct {
	store catalogout.ArticleStore
}

func NewCatalogService(store catalogout.ArticleStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}

func (s *CatalogService) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	articles, err := s.ListArticles(ctx)
	if err != nil {
		return domain.Article{}, err
	}
	for _, a := range articles {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Article{}, fmt.Errorf("article %s: %w", id, apperrors.ErrNotFound)
}

func (s *CatalogService) Complete(ctx context.Context, id string, reflection domain.Reflection) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: article id is required", apperrors.ErrInvalidInput)
	}
	if err := s.store.Complete(ctx, id, reflection); err != nil {
		return fmt.Errorf("complete article %s: %w", id, err)
	}
	return nil
}

// Import upserts articles by id. An article without id gets one derived from
// its title. Tags and status are normalized the same way they are read back.
func (s *CatalogService) Import(ctx context.Context, articles []domain.Article) (int, error) {
	for i := range articles {
		if strings.TrimSpace(articles[i].ID) == "" && strings.TrimSpace(articles[i].Title) != "" {
			articles[i].ID = slug.FromTitle(articles[i].Title)
		}
	}
	for i, a := range articles {
		if err := a.Validate(); err != nil {
			return 0, fmt.Errorf("%w: article %d: %v", apperrors.ErrInvalidInput, i, err)
		}
	}
	for _, a := range articles {
		a.Tags = domain.ParseTags(strings.Join(a.Tags, ","))
		a.Status = domain.ParseStatus(string(a.Status))
		if err := s.store.Upsert(ctx, a); err != nil {
			return 0, fmt.Errorf("import article %s: %w", a.ID, err)
		}
	}
	return len(articles), nil
}
