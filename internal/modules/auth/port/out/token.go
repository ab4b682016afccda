package out

import "time"

type TokenIssuer interface {
	Issue(subject string, issuedAt, expiresAt time.Time) (string, error)
	// Verify fails for tampered, foreign or expired tokens as of now.
	Verify(token string, now time.Time) error
}
