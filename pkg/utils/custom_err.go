package utils

import "errors"

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
	ErrAIUnavailable = errors.New("AI service unavailable")
	ErrCityNotFound  = errors.New("city not found")
)
