package usecase

import (
	"context"

	"paperdrill/internal/modules/ledger/dto"
	ledgerin "paperdrill/internal/modules/ledger/port/in"
	"paperdrill/internal/modules/ledger/service"
)

type Interactor struct {
	svc *service.LedgerService
}

func NewInteractor(svc *service.LedgerService) ledgerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error) {
	entry, err := i.svc.Record(ctx, input.ArticleID, input.Title, input.Sentences, input.Words)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return dto.RecordOutput{Date: entry.Date}, nil
}

func (i *Interactor) Today(ctx context.Context) (dto.DailyStatsOutput, error) {
	date, stats, err := i.svc.Today(ctx)
	if err != nil {
		return dto.DailyStatsOutput{}, err
	}
	return dto.DailyStatsOutput{Date: date, Papers: stats.Papers, Sentences: stats.Sentences, Words: stats.Words}, nil
}
