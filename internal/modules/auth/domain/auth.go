package domain

import (
	"strings"
	"time"
)

const (
	SessionTTL = 7 * 24 * time.Hour
	Subject    = "paperdrill"
)

type Token struct {
	Value     string
	ExpiresAt time.Time
}

type Decision int

const (
	Pass Decision = iota
	RedirectHome
	RedirectLogin
)

// Decide routes a request by path and whether it carries a valid session.
// An authenticated visit to /login goes home and unauthenticated pages go to
// /login. The API and the probes always pass.
func Decide(path string, authenticated bool) Decision {
	if path == "/login" {
		if authenticated {
			return RedirectHome
		}
		return Pass
	}
	if exempt(path) || authenticated {
		return Pass
	}
	return RedirectLogin
}

func exempt(path string) bool {
	switch path {
	case "/api", "/health", "/metrics", "/favicon.ico":
		return true
	}
	return strings.HasPrefix(path, "/api/")
}
