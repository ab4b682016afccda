package dto

import "time"

// CookieName carries the signed session token.
const CookieName = "auth_status"

type LoginInput struct {
	Password string `json:"password"`
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	MaxAge    int
}

type Decision int

const (
	Pass Decision = iota
	RedirectHome
	RedirectLogin
)
