package service

import (
	"crypto/subtle"

	"github.com/gavinjunior/portfolio-backend/config"
	"github.com/gavinjunior/portfolio-backend/internal/auth/domain"
)

// Issuer hands out the static admin bearer token to callers that know the
// admin password. There is no session state: every successful login returns
// the same token until configuration changes.
type Issuer struct {
	cfg config.AuthConfig
}

func NewIssuer(cfg config.AuthConfig) *Issuer {
	return &Issuer{cfg: cfg}
}

// Login returns the configured token when password matches.
func (i *Issuer) Login(password string) (string, error) {
	if !i.cfg.Configured() {
		return "", domain.ErrNotConfigured
	}
	if !Equal(password, i.cfg.AdminPassword) {
		return "", domain.ErrInvalidCredentials
	}
	return i.cfg.SecretToken, nil
}

// Verify checks a presented bearer token against the configured secret.
func Verify(token, secret string) error {
	if secret == "" {
		return domain.ErrNotConfigured
	}
	if token == "" || !Equal(token, secret) {
		return domain.ErrUnauthorized
	}
	return nil
}

// Equal compares two secrets without leaking the position of the first mismatch.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
