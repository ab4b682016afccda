package usecase

import (
	"context"

	"paperdrill/internal/modules/auth/domain"
	"paperdrill/internal/modules/auth/dto"
	authin "paperdrill/internal/modules/auth/port/in"
	"paperdrill/internal/modules/auth/service"
	"paperdrill/internal/platform/metrics"
)

type Interactor struct {
	svc     *service.AuthService
	metrics *metrics.Metrics
}

func NewInteractor(svc *service.AuthService, m *metrics.Metrics) authin.Usecase {
	return &Interactor{svc: svc, metrics: m}
}

func (i *Interactor) Login(_ context.Context, input dto.LoginInput) (dto.LoginOutput, error) {
	token, err := i.svc.Login(input.Password)
	i.metrics.Login(err == nil)
	if err != nil {
		return dto.LoginOutput{}, err
	}
	return dto.LoginOutput{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		MaxAge:    int(domain.SessionTTL.Seconds()),
	}, nil
}

func (i *Interactor) Gate(path, token string) dto.Decision {
	switch domain.Decide(path, i.svc.Authenticated(token)) {
	case domain.RedirectHome:
		return dto.RedirectHome
	case domain.RedirectLogin:
		return dto.RedirectLogin
	default:
		return dto.Pass
	}
}
