package in

import (
	"context"

	"paperdrill/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.LoginOutput, error)
	// Gate decides how to route a request for path carrying the given
	// session cookie value (empty when absent).
	Gate(path, token string) dto.Decision
}
