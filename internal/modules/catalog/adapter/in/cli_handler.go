package in

import (
	"context"

	"paperdrill/internal/modules/catalog/dto"
	catalogin "paperdrill/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (dto.Catalog, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Tags(ctx context.Context) ([]dto.TagCount, error) {
	return h.usecase.Tags(ctx)
}

func (h CLIHandler) Import(ctx context.Context, articles []dto.ImportArticle) (dto.ImportOutput, error) {
	return h.usecase.Import(ctx, dto.ImportInput{Articles: articles})
}
