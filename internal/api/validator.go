package api

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	app_errors "study-buddy/backend/internal/errors"
	"study-buddy/backend/internal/model"
)

// This file provides a singleton validation helper for API request bodies.

var (
	validate *validator.Validate
	once     sync.Once
)

// getInstance initializes the validator once, with the custom tags the
// request DTOs use.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation("action", validateAction); err != nil {
			slog.Error("Failed to register 'action' validation", "error", err)
		}
	})
	return validate
}

// validateAction accepts only the actions the router knows.
func validateAction(fl validator.FieldLevel) bool {
	return model.Action(fl.Field().String()).Valid()
}

// validateRequest checks a payload struct against its `validate` tags.
// Failures are returned as a wrapped `app_errors.ErrValidation` with one
// readable message per field.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		// Example output: "Field 'Action' failed on the 'action' tag."
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}
