package auth

import (
	"crypto/subtle"

	apperrors "staffing-dashboard/internal/errors"
)

// Gate compares a submitted secret with the configured dashboard password.
// Comparison is exact: case-sensitive and without trimming.
type Gate struct {
	password []byte
}

// NewGate creates a gate for password
func NewGate(password string) *Gate {
	return &Gate{password: []byte(password)}
}

// Check reports whether secret equals the configured password
func (g *Gate) Check(secret string) bool {
	if len(g.password) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), g.password) == 1
}

// Authenticate returns ErrIncorrectPassword when secret does not match
func (g *Gate) Authenticate(secret string) error {
	if !g.Check(secret) {
		return apperrors.ErrIncorrectPassword
	}
	return nil
}
