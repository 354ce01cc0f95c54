// Package validatorpkg configures go-playground validators for the fund manager rules.
package validatorpkg

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/pkg/accounttypepkg"
	"github.com/go-petr/fund-manager/pkg/iconpkg"
)

// Custom validation tags.
const (
	TagAccountType = "accounttype"
	TagIcon        = "icon"
	TagDecimalGTE  = "dgte"
)

// New returns a validator reading "validate" struct tags with all custom rules registered.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := Register(v); err != nil {
		return nil, err
	}

	return v, nil
}

// Register adds the decimal type func and the custom tags to v.
//
// It is used both for gin's binding engine and for the ledger's own instance.
func Register(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation(TagAccountType, accounttypepkg.ValidAccountType); err != nil {
		return fmt.Errorf("cannot register %s validator: %w", TagAccountType, err)
	}

	if err := v.RegisterValidation(TagIcon, iconpkg.ValidIcon); err != nil {
		return fmt.Errorf("cannot register %s validator: %w", TagIcon, err)
	}

	if err := v.RegisterValidation(TagDecimalGTE, decimalGTE); err != nil {
		return fmt.Errorf("cannot register %s validator: %w", TagDecimalGTE, err)
	}

	return nil
}

// decimalValue exposes a decimal field to the rules as its exact string form.
func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	return d.String()
}

// decimalGTE reports whether the decimal field is greater than or equal to
// the tag parameter, compared without going through float64.
func decimalGTE(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}

	return value.GreaterThanOrEqual(bound)
}

// GetErrorMsg returns the human readable rule description for a field error,
// meant to be prefixed with the field name.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param() + " characters long"
	case "max":
		if fe.Kind() == reflect.String {
			return " must be at most " + fe.Param() + " characters long"
		}
		return " must be less than " + fe.Param()
	case "gte", TagDecimalGTE:
		return " must be greater than or equal to " + fe.Param()
	case TagAccountType, TagIcon:
		return " is not supported"
	}

	return " is invalid"
}

// Violations converts validator errors into domain field violations.
//
// Errors that are not validator.ValidationErrors are reported as a single
// violation without a field.
func Violations(err error) []domain.FieldViolation {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []domain.FieldViolation{{Rule: "invalid", Message: err.Error()}}
	}

	out := make([]domain.FieldViolation, len(ve))
	for i, fe := range ve {
		out[i] = domain.FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fe.Field() + GetErrorMsg(fe),
		}
	}

	return out
}
