package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"track-recommender/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest binds the JSON body and validates both struct tags and domain rules
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("Validation failed", fieldErrors(err, "request", "invalid JSON format"))
	}
	return validateDomain(req)
}

// ValidateQuery binds and validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		apiErr := errors.NewBadRequestError("Invalid query parameters")
		apiErr.Details = fieldErrors(err, "query", "invalid query parameters")
		return apiErr
	}
	return validateDomain(req)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func fieldErrors(err error, fallbackKey, fallbackMessage string) map[string]string {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return map[string]string{fallbackKey: fallbackMessage}
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			details[field] = "is required"
		case "min":
			details[field] = "must be at least " + fieldError.Param()
		case "max":
			details[field] = "must be at most " + fieldError.Param()
		case "alphanum":
			details[field] = "must be alphanumeric"
		default:
			details[field] = "is invalid"
		}
	}
	return details
}
