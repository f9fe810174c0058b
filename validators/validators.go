package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared struct validator used by the resource validators.
var Validate = validator.New()

// FieldErrors flattens validator.ValidationErrors into the field→message
// map the validation error response expects.
func FieldErrors(err error) map[string]string {
	errors := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", fe.Field())
		case "gt":
			errors[field] = fmt.Sprintf("%s must be greater than %s!", fe.Field(), fe.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
		case "lte":
			errors[field] = fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
		case "min":
			errors[field] = fmt.Sprintf("%s must have at least %s entries!", fe.Field(), fe.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", fe.Field())
		}
	}

	return errors
}
