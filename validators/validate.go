package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// report fields by their json name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates the struct tags of v. Every failing field maps to messages[field], or
// to a generic message when the field has none.
func Check(v interface{}, messages map[string]string) map[string]string {
	errs := make(map[string]string)

	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["request"] = err.Error()
		return errs
	}
	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()]; ok {
			errs[fe.Field()] = msg
			continue
		}
		errs[fe.Field()] = fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
	return errs
}

// Clamp saturates v to [lo, hi], the way the form's number inputs do.
func Clamp[T int | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
