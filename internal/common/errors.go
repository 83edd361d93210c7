package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Memo errors
	ErrMemoNotFound = errors.New("memo not found")

	// Auth errors
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUnknownProvider = errors.New("unknown oauth provider")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
