package service

import (
	"crypto/subtle"
	"fmt"

	"paperdrill/internal/modules/auth/domain"
	authout "paperdrill/internal/modules/auth/port/out"
	"paperdrill/internal/platform/clock"
	apperrors "paperdrill/internal/platform/errors"
)

type AuthService struct {
	clock    clock.Clock
	password []byte
	issuer   authout.TokenIssuer
}

func NewAuthService(clock clock.Clock, password string, issuer authout.TokenIssuer) *AuthService {
	return &AuthService{clock: clock, password: []byte(password), issuer: issuer}
}

func (s *AuthService) Login(password string) (domain.Token, error) {
	if len(s.password) == 0 || subtle.ConstantTimeCompare([]byte(password), s.password) != 1 {
		return domain.Token{}, apperrors.ErrAuthFailed
	}
	now := s.clock.Now()
	expires := now.Add(domain.SessionTTL)
	value, err := s.issuer.Issue(domain.Subject, now, expires)
	if err != nil {
		return domain.Token{}, fmt.Errorf("issue session: %w", err)
	}
	return domain.Token{Value: value, ExpiresAt: expires}, nil
}

func (s *AuthService) Authenticated(token string) bool {
	if token == "" {
		return false
	}
	return s.issuer.Verify(token, s.clock.Now()) == nil
}
