package domain

import "errors"

var (
	// ErrNotConfigured means the admin password or secret token is unset.
	ErrNotConfigured      = errors.New("server configuration error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("invalid or missing API token")
)
