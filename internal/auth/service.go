package auth

import (
	"crypto/rand"
	"fmt"
	"time"

	apperrors "staffing-dashboard/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "staffing-dashboard"

// Session is the per-user access state
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	IssuedAt      time.Time `json:"issued_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// SessionClaims represents the session token claims
type SessionClaims struct {
	Authenticated bool `json:"auth"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session tokens
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionService creates a new session service. An empty secret gets a
// random per-process key, so sessions do not survive a restart.
func NewSessionService(config *AuthConfig) (*SessionService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	secret := []byte(config.SessionSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}

	return &SessionService{
		secret: secret,
		ttl:    config.SessionTTL,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// Issue creates an authenticated session and its signed token
func (s *SessionService) Issue() (*Session, string, error) {
	now := s.now().Truncate(time.Second)
	session := &Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		IssuedAt:      now,
		ExpiresAt:     now.Add(s.ttl),
	}

	claims := &SessionClaims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session: %w", err)
	}
	return session, signed, nil
}

// Validate parses tokenString into a Session. Any failure yields ErrSessionInvalid.
func (s *SessionService) Validate(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, apperrors.ErrSessionMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionInvalid, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Authenticated || claims.ID == "" {
		return nil, apperrors.ErrSessionInvalid
	}

	session := &Session{ID: claims.ID, Authenticated: true}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
