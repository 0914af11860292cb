// Package auth provides the admin console's pluggable authentication:
// a credential check plus short-lived session tokens.
package auth

import (
	"context"
	"crypto/subtle"

	"glassysee/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator verifies an admin credential pair.
type Authenticator interface {
	// Authenticate returns model.ErrInvalidCredentials when the pair
	// does not match.
	Authenticate(ctx context.Context, username, password string) error
}

// staticAuthenticator checks credentials against a single configured
// pair. The password is either a bcrypt hash or, when no hash is
// configured, a plaintext value compared in constant time.
type staticAuthenticator struct {
	username     string
	password     string
	passwordHash string
	logger       zerolog.Logger
}

// NewStatic creates an authenticator for a single configured admin
// credential pair. passwordHash takes precedence over password when set.
func NewStatic(username, password, passwordHash string, logger zerolog.Logger) Authenticator {
	return &staticAuthenticator{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		logger:       logger.With().Str("component", "static-auth").Logger(),
	}
}

// Authenticate verifies the credential pair.
func (a *staticAuthenticator) Authenticate(ctx context.Context, username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) != 1 {
		a.logger.Warn().Str("username", username).Msg("unknown admin username")
		return model.ErrInvalidCredentials
	}

	if a.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
			a.logger.Warn().Str("username", username).Msg("admin password mismatch")
			return model.ErrInvalidCredentials
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		a.logger.Warn().Str("username", username).Msg("admin password mismatch")
		return model.ErrInvalidCredentials
	}

	return nil
}

// HashPassword returns the bcrypt hash of a password, for provisioning
// ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
