package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "organisation-api/internal/errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "<jsonField>.<tag>" to the client-facing message
var fieldMessages = map[string]string{
	"firstName.required": "First name is required",
	"lastName.required":  "Last name is required",
	"email.required":     "Email is required",
	"password.required":  "Password is required",
	"name.required":      "Name is required",
	"userId.required":    "User id is required",
}

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs every rule on req and collects all failures into apperrors.ValidationErrors
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := make(apperrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
