package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names by their json tag so error details match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks struct tags and returns a field -> failed-tag map, nil when valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// MissingFields returns the json names of every field that failed the
// "required" tag, so incomplete submissions can name all absent fields at once.
func MissingFields(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var missing []string
	for _, err := range err.(validator.ValidationErrors) {
		if err.Tag() == "required" {
			missing = append(missing, err.Field())
		}
	}
	return missing
}
