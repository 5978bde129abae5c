// Package validation checks DTO struct tags and reports the first failing field
// as an apperrors.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Validator wraps a configured validator.Validate.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the "notblank" tag registered and decimal.Decimal
// fields compared as numbers.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// error fields are reported by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return &Validator{validate: v}
}

// Struct validates s. It returns nil or a *apperrors.ValidationError for the first
// failing field in declaration order.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldErr := validationErrors[0]
		return &apperrors.ValidationError{
			Field:  fieldErr.Field(),
			Reason: reason(fieldErr),
		}
	}
	return fmt.Errorf("validate %T: %w", s, err)
}

// reason turns a failed rule into a human readable message.
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "must not be blank"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "contains":
		return fmt.Sprintf("must contain %q", fe.Param())
	default:
		return "failed on rule: " + fe.Tag()
	}
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
