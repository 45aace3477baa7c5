package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/brandgen/internal/generator"
)

// Request decoding failures. MapError turns ErrBinding into 400 and
// ErrValidation into 400 with per-field details.
var (
	ErrValidation = errors.New("validation failed")
	ErrBinding    = errors.New("binding failed")
)

var validate = newValidator()

// newValidator reports fields under their JSON names and adds the brandgen
// rules: notempty rejects whitespace-only strings, maxkeywords=N caps the
// comma-separated keyword list.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	must(v.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("maxkeywords", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && len(generator.ParseKeywords(fl.Field().String())) <= limit
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validator returns the shared validator.
func Validator() *validator.Validate {
	return validate
}

// Validate checks v against its validate tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	return bindAndValidate(c, binding.JSON, v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	return bindAndValidate(c, binding.Query, v)
}

func bindAndValidate(c *gin.Context, b binding.Binding, v any) error {
	if err := c.ShouldBindWith(v, b); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// ValidationErrors maps each failing JSON field to a readable message.
func ValidationErrors(err error) map[string]string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{}
	}

	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fieldMessage(fe)
	}

	return details
}

// BindingErrors names the field behind a JSON type mismatch, or returns nil
// when the failure is not tied to one field.
func BindingErrors(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	return map[string]string{typeErr.Field: "must be a " + jsonKind(typeErr.Type.Kind())}
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "number"
	}
}

var fieldMessages = map[string]string{
	"required":    "this field is required",
	"notempty":    "must not be empty",
	"maxkeywords": "must list at most {param} keywords",
	"gte":         "must be greater than or equal to {param}",
	"lte":         "must be less than or equal to {param}",
	"oneof":       "must be one of: {param}",
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "max":
		bound := "at least "
		if fe.Tag() == "max" {
			bound = "at most "
		}
		msg := "must be " + bound + fe.Param()
		if fe.Kind() == reflect.String {
			msg += " characters"
		}

		return msg
	}

	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}
