package auth

import (
	"fmt"
	"time"

	"staffing-dashboard/internal/config"
	apperrors "staffing-dashboard/internal/errors"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "staffing_session"

// AuthConfig holds the access gate configuration
type AuthConfig struct {
	Password      string
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookie  bool
}

// NewAuthConfig derives the gate configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		Password:      cfg.DashboardPassword,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		SecureCookie:  cfg.IsProduction(),
	}
}

// ValidateConfig validates the gate configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.Password == "" {
		return apperrors.ErrDashboardPasswordMissing
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}
