package domain

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrSessionCompleted  = errors.New("session completed")
	ErrNotPlayable       = errors.New("article is not playable")
	ErrPoolIndex         = errors.New("index out of range")
	ErrTargetPosition    = errors.New("target position out of range")
	ErrTileNotFound      = errors.New("tile not found")
	ErrEmptyAnswer       = errors.New("no tiles placed")
)
