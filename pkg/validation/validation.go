// Package validation checks request commands against their struct tags and
// reports failures per field, keyed by the JSON name of the field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is matched by every *Error with errors.Is.
var ErrInvalid = errors.New("validation failed")

// Error lists the fields that failed validation with a readable message each.
type Error struct {
	Fields map[string]string `json:"fields"`
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return ErrInvalid }

var (
	mu       sync.RWMutex
	validate = newValidator()
	messages = map[string]string{}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Register adds a string-valued tag backed by allow. message is reported for
// fields that fail it. Call during package initialization.
func Register(tag string, allow func(string) bool, message string) {
	mu.Lock()
	defer mu.Unlock()

	validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return allow(fl.Field().String())
	})
	messages[tag] = message
}

// Struct validates v. It returns nil, an *Error describing each failing field,
// or the underlying error when v is not a validatable struct.
func Struct(v any) error {
	mu.RLock()
	defer mu.RUnlock()

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = message(fe)
		}
	}
	return &Error{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return fmt.Sprintf("must match %s", strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}

	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("failed %s check", fe.Tag())
}
