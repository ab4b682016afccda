package out

import (
	"context"

	catalogdto "paperdrill/internal/modules/catalog/dto"
	catalogin "paperdrill/internal/modules/catalog/port/in"
	"paperdrill/internal/modules/reflection/domain"
	reflectionout "paperdrill/internal/modules/reflection/port/out"
)

type CatalogWriter struct {
	catalog catalogin.Usecase
}

func NewCatalogWriter(catalog catalogin.Usecase) reflectionout.ArticleWriter {
	return &CatalogWriter{catalog: catalog}
}

func (w *CatalogWriter) MarkDone(ctx context.Context, submission domain.Submission) error {
	return w.catalog.Complete(ctx, catalogdto.CompleteInput{
		ID:      submission.ID,
		Purpose: submission.Purpose,
		Methods: submission.Methods,
		Results: submission.Results,
		Memo:    submission.Memo,
	})
}
