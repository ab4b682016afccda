package out

import (
	"errors"
	"fmt"
	"time"

	authout "paperdrill/internal/modules/auth/port/out"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "paperdrill"

type JWTIssuer struct {
	secret []byte
}

func NewJWTIssuer(secret string) (authout.TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &JWTIssuer{secret: []byte(secret)}, nil
}

func (j *JWTIssuer) Issue(subject string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (j *JWTIssuer) Verify(token string, now time.Time) error {
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return fmt.Errorf("verify session token: %w", err)
	}
	return nil
}
