package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all entities. Field names are reported using their
// JSON tag so errors line up with the wire format.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateEntity runs struct validation on v and converts the first failing
// field into a ValidationError. Fields are checked in declaration order, so the
// order of struct fields decides which error wins.
func validateEntity(entity string, v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		if strings.Contains(fe.Field(), "[") {
			// dive element, e.g. cardIds[2]
			return NewValidationError(fe.Field(), fmt.Sprintf("%s has empty %s", entity, fe.Field()), ErrValidation)
		}
		return NewValidationError(fe.Field(), fmt.Sprintf("%s must have %s", entity, fe.Field()), ErrValidation)
	default:
		return NewValidationError(fe.Field(), fmt.Sprintf("%s has invalid %s", entity, fe.Field()), ErrValidation)
	}
}
