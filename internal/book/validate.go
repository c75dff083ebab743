package book

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"bookstore/internal/config"
)

var (
	// ErrMissingValue marks a required field that was not supplied at all.
	ErrMissingValue = errors.New("missing required value")
	// ErrInvalidValue marks a supplied field with the wrong shape or range.
	ErrInvalidValue = errors.New("invalid value")
)

// ValidationError describes the first field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	for tag, fn := range customValidations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("book: register %q validation: %v", tag, err))
		}
	}
}

var customValidations = map[string]validator.Func{
	"isbn_digits": validateISBNDigits,
	"finite":      validateFinite,
}

func validateISBNDigits(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func missing(field string) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
		Err:     ErrMissingValue,
	}
}

func validateISBN(isbn string) error {
	return check("isbn", isbn, "min=10,max=13,isbn_digits")
}

func validatePrice(price float64) error {
	return check("price", price, "finite,gte=0")
}

func validateYear(year int, cfg config.Config) error {
	return check("year", year, fmt.Sprintf("gte=%d,lte=%d", config.MinYear, cfg.MaxBookYear()))
}

// check runs a validator tag list against a single value and translates the
// first failure into a ValidationError.
func check(field string, value any, tags string) error {
	err := validate.Var(value, tags)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Field: field, Message: err.Error(), Err: ErrInvalidValue}
	}

	fe := verrs[0]
	var message string
	switch fe.Tag() {
	case "min", "max":
		message = fmt.Sprintf("%s must be between 10 and 13 digits after removing hyphens, got %q", field, value)
	case "isbn_digits":
		message = fmt.Sprintf("%s must contain only digits, got %q", field, value)
	case "finite":
		message = fmt.Sprintf("%s must be a finite number", field)
	case "gte":
		message = fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), value)
	case "lte":
		message = fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), value)
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}

	return &ValidationError{Field: field, Message: message, Err: ErrInvalidValue}
}
