package services

import "errors"

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrUsernameTooShort   = errors.New("username too short")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrConflict           = errors.New("username already taken")
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
