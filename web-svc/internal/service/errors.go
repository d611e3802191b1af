package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNothingSelected      = errors.New("select a cafe and at least one dish")
	ErrNoRatings            = errors.New("rate at least one dish")
)

// FormError lists the invalid fields of a submitted form.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return "invalid form"
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateForm runs struct tags and turns failures into a FormError keyed by field.
func validateForm(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	fe := &FormError{Fields: make(map[string]string, len(verrs))}
	for _, v := range verrs {
		fe.Fields[v.Field()] = fieldMessage(v)
	}
	return fe
}

func fieldMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return v.Field() + " is required"
	case "gt":
		return v.Field() + " must be greater than " + v.Param()
	case "min":
		return v.Field() + " must be at least " + v.Param()
	case "max":
		return v.Field() + " must be at most " + v.Param()
	default:
		return v.Field() + " is invalid"
	}
}
