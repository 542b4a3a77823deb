package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Failures of the binding rules are reported by JSON name so they match
// what the client sent.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

var tagReasons = map[string]string{
	"email":  "invalid email address",
	"number": "should contain only numbers",
}

// Validate runs the binding rules declared on s.
func Validate(reason string, s interface{}) error {
	return AsValidationError(reason, binding.Validator.ValidateStruct(s))
}

// AsValidationError turns validator failures into a ValidationError.
// Missing fields are reported together under reason; otherwise the first
// failed rule is reported. Other errors are returned unchanged.
func AsValidationError(reason string, err error) error {
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	var missing []string
	for _, fe := range failures {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return NewValidationError(reason, missing...)
	}

	fe := failures[0]
	msg, ok := tagReasons[fe.Tag()]
	switch {
	case !ok:
		msg = "invalid " + fe.Field()
	case fe.Tag() == "number":
		msg = fe.Field() + " " + msg
	}
	return NewValidationError(msg, fe.Field())
}
