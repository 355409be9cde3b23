// file: internals/helpers/validate.go
package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"blackbear_backend/internals/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their json name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckStruct validates in against its `validate` tags. On failure it
// returns a ValidationError carrying the given aggregated message plus a
// per-field map of the failed rules.
func CheckStruct(in interface{}, message string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewValidation(message)
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return errs.NewValidationFields(message, fields)
}
