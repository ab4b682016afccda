package in

import (
	"context"

	"paperdrill/internal/modules/ledger/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	Today(ctx context.Context) (dto.DailyStatsOutput, error)
}
