package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator reports fields by their json or query names.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	return validate
}

// validationMessage turns validator failures into one short message naming
// the first offending field.
func validationMessage(err error) string {
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) || len(failures) == 0 {
		return "invalid input"
	}
	failure := failures[0]
	field := failure.Field()
	if index := strings.IndexByte(field, '['); index >= 0 {
		field = field[:index]
	}
	switch failure.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("invalid %s", field)
	case "datetime":
		return fmt.Sprintf("%s must be YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("invalid %s", field)
	}
}

func (handler *Handler) validateInput(input any) error {
	if err := handler.validate.Struct(input); err != nil {
		return errors.New(validationMessage(err))
	}
	return nil
}
