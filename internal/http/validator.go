package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"rentbaaz/internal/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("mobile", validateMobileNumber)
	validate.RegisterValidation("role", validateRole)
}

var mobileRe = regexp.MustCompile(`^[0-9]{10}$`)

func validateMobileNumber(fl validator.FieldLevel) bool {
	return mobileRe.MatchString(fl.Field().String())
}

func validateRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == "admin" || role == "user"
}

// ValidateStruct runs the validate tags on a request body and returns
// field-level details for the error envelope.
func ValidateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "mobile":
			message = fmt.Sprintf("%s must be a 10-digit mobile number", field)
		case "role":
			message = fmt.Sprintf("%s must be admin or user", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gte", "lte":
			message = fmt.Sprintf("%s must be between %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, httpx.ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}
	return details
}
