package http

import (
	"fmt"
	"strings"

	"bookcatalog/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("published_year", validatePublishedYear)
}

// validatePublishedYear keeps the year bound out of struct tag literals so
// the accepted range stays defined once, in the entity package.
func validatePublishedYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= entity.MinPublishedYear && year <= entity.MaxPublishedYear
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct checks every tagged rule on s and reports all violations
// together, one entry per failing field.
func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "published_year":
			message = fmt.Sprintf("%s must be between %d and %d", field, entity.MinPublishedYear, entity.MaxPublishedYear)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}
