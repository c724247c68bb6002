package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"bookshelf/internal/platform/crypto"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("password_strength", validatePasswordStrength)
	_ = validate.RegisterValidation("shelf_name", validateShelfName)
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	return crypto.ValidatePasswordStrength(fl.Field().String()) == nil
}

// validateShelfName accepts 1..50 characters without control characters.
func validateShelfName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	n := utf8.RuneCountInString(name)
	if n == 0 || n > 50 {
		return false
	}
	return strings.IndexFunc(name, unicode.IsControl) < 0
}

// ValidateStruct runs the validate tags of s and turns failures into error details
// keyed by the JSON field name.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "numeric":
			message = fmt.Sprintf("%s must contain digits only", field)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", field)
		case "shelf_name":
			message = fmt.Sprintf("%s must be 1-50 characters without control characters", field)
		case "password_strength":
			message = fmt.Sprintf("%s must be 8-72 characters with uppercase, lowercase, number, and special character", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}

// DecodeJSON decodes the request body into dst and rejects unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
