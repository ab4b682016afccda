package out

import (
	"context"

	"paperdrill/internal/modules/catalog/domain"
)

type ArticleStore interface {
	List(ctx context.Context) ([]domain.Article, error)
	Upsert(ctx context.Context, article domain.Article) error
	// Complete writes the reflection fields and marks the article Done.
	// A missing id yields apperrors.ErrNotFound.
	Complete(ctx context.Context, id string, reflection domain.Reflection) error
}
