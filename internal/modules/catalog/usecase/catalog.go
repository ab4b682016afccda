package usecase

import (
	"context"

	"paperdrill/internal/modules/catalog/domain"
	"paperdrill/internal/modules/catalog/dto"
	catalogin "paperdrill/internal/modules/catalog/port/in"
	"paperdrill/internal/modules/catalog/service"
	ledgerin "paperdrill/internal/modules/ledger/port/in"

	"golang.org/x/sync/errgroup"
)

type Interactor struct {
	svc    *service.CatalogService
	ledger ledgerin.Usecase
}

func NewInteractor(svc *service.CatalogService, ledger ledgerin.Usecase) catalogin.Usecase {
	return &Interactor{svc: svc, ledger: ledger}
}

// Load reads the articles and today's ledger totals concurrently.
func (i *Interactor) Load(ctx context.Context) (dto.Catalog, error) {
	var (
		articles []domain.Article
		daily    domain.DailyStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = i.svc.ListArticles(gctx)
		return err
	})
	if i.ledger != nil {
		g.Go(func() error {
			today, err := i.ledger.Today(gctx)
			if err != nil {
				return err
			}
			daily = domain.DailyStats{Papers: today.Papers, Sentences: today.Sentences, Words: today.Words}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dto.Catalog{}, err
	}
	return dto.Catalog{Articles: articles, DailyStats: daily}, nil
}

func (i *Interactor) GetArticle(ctx context.Context, id string) (dto.Article, error) {
	return i.svc.GetArticle(ctx, id)
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) error {
	return i.svc.Complete(ctx, input.ID, domain.Reflection{
		Purpose: input.Purpose,
		Methods: input.Methods,
		Results: input.Results,
		Memo:    input.Memo,
	})
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	articles := make([]domain.Article, 0, len(input.Articles))
	for _, a := range input.Articles {
		articles = append(articles, domain.Article{
			ID:       a.ID,
			Title:    a.Title,
			Tags:     a.Tags,
			Status:   domain.Status(a.Status),
			Stats:    a.Stats,
			GameData: a.GameData,
		})
	}
	n, err := i.svc.Import(ctx, articles)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{Imported: n}, nil
}

func (i *Interactor) Tags(ctx context.Context) ([]dto.TagCount, error) {
	articles, err := i.svc.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Tags(articles), nil
}
