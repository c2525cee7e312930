package errors

import (
	"errors"
	"fmt"
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
	Context string // Additional context like "with this title"
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

// DuplicateTitleError reports which title in a bulk-create request collided.
// The offending title is surfaced to the caller verbatim.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("title already exists: %s", e.Title)
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

// ExternalFetchError represents a failure fetching an external resource,
// e.g. a logo URL that returned a non-200 status or a non-image payload
type ExternalFetchError struct {
	Message string
}

func (e *ExternalFetchError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrToolNotFound = &NotFoundError{Entity: "tool"}
	ErrTeamNotFound = &NotFoundError{Entity: "team"}
	ErrLogoNotFound = &NotFoundError{Entity: "logo"}
)

// Already Exists Errors
var (
	ErrToolTitleExists = &AlreadyExistsError{Entity: "tool", Context: "with this title"}
	ErrTeamNameExists  = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrInvalidAccessAction = &ValidationError{Field: "action", Message: "must be one of open_tool, view_modal"}
	ErrLogoNotImage        = &ValidationError{Field: "logo", Message: "must be an image file"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError or DuplicateTitleError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	var dupErr *DuplicateTitleError
	return errors.As(err, &existsErr) || errors.As(err, &dupErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalFetch checks if an error is an ExternalFetchError
func IsExternalFetch(err error) bool {
	var fetchErr *ExternalFetchError
	return errors.As(err, &fetchErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewDuplicateTitleError creates a new DuplicateTitleError naming the offending title
func NewDuplicateTitleError(title string) error {
	return &DuplicateTitleError{Title: title}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewExternalFetchError creates a new ExternalFetchError
func NewExternalFetchError(message string) error {
	return &ExternalFetchError{Message: message}
}
