package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/meeting-intelligence/pkg/nullable"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	v.RegisterCustomTypeFunc(nullableString, nullable.Value[string]{})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// nullableString exposes the wrapped string so tags like omitempty,max=N apply to it.
// Absent and null values validate as empty.
func nullableString(field reflect.Value) interface{} {
	if v, ok := field.Interface().(nullable.Value[string]); ok && v.Ptr != nil {
		return *v.Ptr
	}
	return nil
}
