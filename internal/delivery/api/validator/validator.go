// Package validator adapts go-playground/validator to Echo.
package validator

import (
	"reflect"
	"strings"
	"unicode"

	"storerating/internal/domain/entity"
	"storerating/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 16
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// customRules are the tags registered on top of the built-in ones.
var customRules = map[string]validator.Func{
	"password": validatePassword,
	"role":     validateRole,
}

// New creates a validator with the password and role tags registered.
func New() (*CustomValidator, error) {
	return newWithRules(customRules)
}

func newWithRules(rules map[string]validator.Func) (*CustomValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON or query names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, errors.Wrapf(err, "failed to register %q validation", tag)
		}
	}

	return &CustomValidator{validate: validate}, nil
}

// Validate validates a bound request struct.
func (v *CustomValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// validatePassword requires 8-16 characters with at least one uppercase letter
// and one special character.
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	length := len([]rune(password))
	if length < passwordMinLength || length > passwordMaxLength {
		return false
	}

	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	return hasUpper && hasSpecial
}

func validateRole(fl validator.FieldLevel) bool {
	_, ok := entity.ParseRole(fl.Field().String())

	return ok
}

// FieldErrors flattens validation failures into field name to message pairs.
// It returns nil when err holds no validation failures.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = describe(fe)
	}

	return fields
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}

		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}

		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "password":
		return "must be 8-16 characters with an uppercase letter and a special character"
	case "role":
		return "must be one of: user owner admin"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed on " + fe.Tag()
	}
}
