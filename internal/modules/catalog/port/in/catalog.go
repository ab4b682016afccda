package in

import (
	"context"

	"paperdrill/internal/modules/catalog/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.Catalog, error)
	GetArticle(ctx context.Context, id string) (dto.Article, error)
	Complete(ctx context.Context, input dto.CompleteInput) error
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
	Tags(ctx context.Context) ([]dto.TagCount, error)
}
