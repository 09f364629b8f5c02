package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so clients see the keys they sent.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// Money fields are compared as floats so gte/lte ranges apply to them.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// FieldError lists the failed constraints of one request field.
type FieldError struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

// ValidationErrors is returned when a request body fails field validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+strings.Join(fe.Errors, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks s against its validate tags.
func Validate(s interface{}) error {
	return validateWithPrefix(s, "")
}

// ValidateAll validates every element of a batch, prefixing field names with
// the element index.
func ValidateAll[T any](items []T) error {
	var all ValidationErrors
	for i := range items {
		err := validateWithPrefix(&items[i], fmt.Sprintf("[%d].", i))
		if err == nil {
			continue
		}
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		all = append(all, verrs...)
	}
	if len(all) > 0 {
		return all
	}
	return nil
}

func validateWithPrefix(s interface{}, prefix string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var out ValidationErrors
	index := map[string]int{}
	for _, fe := range fieldErrs {
		field := prefix + fe.Field()
		i, ok := index[field]
		if !ok {
			i = len(out)
			index[field] = i
			out = append(out, FieldError{Field: field})
		}
		out[i].Errors = append(out[i].Errors, describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
