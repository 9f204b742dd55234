package errors

import (
	"errors"
	"fmt"
)

// AuthenticationError represents a rejected access attempt
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConnectionError represents an unreachable data source
type ConnectionError struct {
	Source string
	Err    error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data source %s unreachable: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("data source %s unreachable", e.Source)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError represents a failed query against the staffing view: missing
// view, schema mismatch or a row that cannot be scanned.
type QueryError struct {
	View string
	Err  error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("query on %s failed: %v", e.View, e.Err)
	}
	return fmt.Sprintf("query on %s failed", e.View)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Authentication Errors
var (
	ErrIncorrectPassword = &AuthenticationError{Message: "Password errata"}
	ErrSessionMissing    = &AuthenticationError{Message: "session cookie is missing"}
	ErrSessionInvalid    = &AuthenticationError{Message: "session is invalid or expired"}
)

// Configuration Errors
var (
	ErrDashboardPasswordMissing = &ConfigurationError{Message: "DASHBOARD_PASSWORD must be set"}
	ErrSessionSecretMissing     = &ConfigurationError{Message: "SESSION_SECRET must be set in production"}
)

// Filter Errors
var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Helper Functions

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConnection checks if an error is a ConnectionError
func IsConnection(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// IsQuery checks if an error is a QueryError
func IsQuery(err error) bool {
	var queryErr *QueryError
	return errors.As(err, &queryErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewConnectionError wraps err as a ConnectionError for the given source
func NewConnectionError(source string, err error) error {
	return &ConnectionError{Source: source, Err: err}
}

// NewQueryError wraps err as a QueryError for the given view
func NewQueryError(view string, err error) error {
	return &QueryError{View: view, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
