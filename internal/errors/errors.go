package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every invalid field of a request, in declaration order
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s - %s", fe.Field, fe.Message))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Fields returns the names of the invalid fields
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// PersistenceError hides a storage failure behind a generic, client-safe message
type PersistenceError struct {
	Message string
}

func (e *PersistenceError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrOrganisationNotFound = &NotFoundError{Entity: "organisation"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Authentication and authorization errors
var (
	// ErrAuthenticationFailed is returned for unknown email and wrong password alike.
	ErrAuthenticationFailed = &AuthenticationError{Message: "Authentication failed"}

	ErrMissingCredential = &AuthorizationError{Message: "Forbidden: no credential supplied"}
	ErrInvalidCredential = &AuthorizationError{Message: "Forbidden: invalid credential"}
	ErrAccountMissing    = &AuthorizationError{Message: "Forbidden: account no longer exists"}
)

// Persistence errors
var (
	ErrRegistrationFailed = &PersistenceError{Message: "Registration unsuccessful"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationErrors
func IsValidation(err error) bool {
	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// AsValidation extracts the field errors from err
func AsValidation(err error) (ValidationErrors, bool) {
	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewFieldError creates a ValidationErrors holding a single field
func NewFieldError(field, message string) error {
	return ValidationErrors{{Field: field, Message: message}}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
