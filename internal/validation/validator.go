// Package validation checks request payloads against their struct tags and
// reports the failure as a typed service error.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"blog-api/internal/service"

	"github.com/go-playground/validator/v10"
)

// Validator plugs into echo.Echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// report json keys, since that is what clients send
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate returns nil, a MissingField / InvalidField *service.Error, or the
// validator's own error for things that are not field failures.
func (v *Validator) Validate(i any) error {
	return Translate(v.validate.Struct(i))
}

// Translate turns validator errors into the first failing field in struct
// order. Absent keys take precedence over malformed ones.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return service.MissingField(fe.Field())
		}
	}
	return service.InvalidField(verrs[0].Field())
}
