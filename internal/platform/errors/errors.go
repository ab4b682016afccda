package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrAuthFailed       = errors.New("authentication failed")
)
