package service

import (
	"errors"
	"reflect"
	"strings"

	apperrors "application-catalog-bff/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the validator used by all services. Field names in
// validation failures are taken from the json tag so client-facing details
// report wire names (access_owner_email) instead of Go struct fields.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// asValidationError converts validator/v10 failures into the application
// error taxonomy so handlers can map them to a 400 uniformly. Only the first
// failing field is reported; a single invalid element rejects the payload.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(fe.Field(), "required")
	case "email":
		return apperrors.NewValidationError(fe.Field(), "invalid_email")
	case "url":
		return apperrors.NewValidationError(fe.Field(), "invalid_url")
	case "oneof":
		return apperrors.NewValidationError(fe.Field(), "invalid_value")
	case "datetime":
		return apperrors.NewValidationError(fe.Field(), "invalid_date")
	default:
		return apperrors.NewValidationError(fe.Field(), fe.Tag())
	}
}
