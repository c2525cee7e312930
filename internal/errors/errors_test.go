package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "tool"}
		assert.Equal(t, "tool not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "tool"}
		err2 := &NotFoundError{Entity: "tool"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "tool"}
		err2 := &NotFoundError{Entity: "team"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrToolNotFound, ErrToolNotFound))
		assert.False(t, errors.Is(ErrToolNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrLogoNotFound, ErrToolNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrToolNotFound))
		assert.True(t, IsNotFound(ErrLogoNotFound))
		assert.False(t, IsNotFound(ErrToolTitleExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tool", Context: "with this title"}
		assert.Equal(t, "tool already exists with this title", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tool"}
		assert.Equal(t, "tool already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "tool", Context: "with this title"}
		assert.True(t, errors.Is(err1, ErrToolTitleExists))
		assert.False(t, errors.Is(err1, ErrTeamNameExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrToolTitleExists))
		assert.True(t, IsAlreadyExists(ErrTeamNameExists))
		assert.False(t, IsAlreadyExists(ErrToolNotFound))
	})
}

func TestDuplicateTitleError(t *testing.T) {
	t.Run("Error message names the title", func(t *testing.T) {
		err := NewDuplicateTitleError("Grafana")
		assert.Equal(t, "title already exists: Grafana", err.Error())
	})

	t.Run("IsAlreadyExists covers duplicate titles", func(t *testing.T) {
		err := NewDuplicateTitleError("Grafana")
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("errors.As recovers the title", func(t *testing.T) {
		err := NewDuplicateTitleError("Grafana")
		var dup *DuplicateTitleError
		assert.True(t, errors.As(err, &dup))
		assert.Equal(t, "Grafana", dup.Title)
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid_email"}
		assert.Equal(t, "validation error: email - invalid_email", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid_email")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrLogoNotImage))
		assert.False(t, IsValidation(ErrToolNotFound))
	})
}

func TestExternalFetchError(t *testing.T) {
	t.Run("Error message is the client-facing text", func(t *testing.T) {
		err := NewExternalFetchError("Unable to fetch logo URL.")
		assert.Equal(t, "Unable to fetch logo URL.", err.Error())
	})

	t.Run("IsExternalFetch helper", func(t *testing.T) {
		err := NewExternalFetchError("Logo URL must be an image.")
		assert.True(t, IsExternalFetch(err))
		assert.False(t, IsExternalFetch(ErrLogoNotFound))
		assert.False(t, IsExternalFetch(ErrLogoNotImage))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidAccessAction)
		assert.Error(t, ErrLogoNotImage)
	})
}
