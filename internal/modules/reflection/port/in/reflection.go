package in

import (
	"context"

	exercisedto "paperdrill/internal/modules/exercise/dto"
	"paperdrill/internal/modules/reflection/dto"
)

type Usecase interface {
	Summary(session exercisedto.Session) (dto.SummaryOutput, error)
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
}
