package helper

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct - required-field check before any store call
func ValidateStruct(s interface{}) *Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		var missing []string
		for _, e := range errs {
			missing = append(missing, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
		}
		return ValidationFailed("invalid fields: " + strings.Join(missing, ", "))
	}
	return ValidationFailed(err.Error())
}
