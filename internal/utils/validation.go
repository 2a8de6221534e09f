package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames makes gin's validator report fields by their json names,
// so messages read "JobId is required" rather than the Go field name.
func UseJSONFieldNames() {
	jsonNamesOnce.Do(registerJSONFieldNames)
}

var jsonNamesOnce sync.Once

func registerJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name = field.Tag.Get("form")
		}
		return name
	})
}

// ValidationMessage flattens binding errors into one human-readable message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		return strings.Join(messages, ", ")
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return "Malformed JSON body"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s has an invalid type", typeErr.Field)
	}

	return "Invalid request body"
}

func fieldMessage(fe validator.FieldError) string {
	field := displayName(fe.Field())

	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid", "uuid4":
		return field + " must be a valid id"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}

func displayName(field string) string {
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
