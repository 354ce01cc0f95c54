// Package accounttypepkg provides the closed set of supported account types.
package accounttypepkg

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/fund-manager/internal/domain"
)

// SupportedAccountTypes holds all the supported account types in display order.
var SupportedAccountTypes = []domain.AccountType{
	domain.AccountTypePersonal,
	domain.AccountTypeCurrent,
	domain.AccountTypeSavings,
	domain.AccountTypeBusiness,
	domain.AccountTypeInvestment,
}

// IsSupported returns true if the account type is supported.
func IsSupported(accountType string) bool {
	for _, t := range SupportedAccountTypes {
		if string(t) == accountType {
			return true
		}
	}

	return false
}

// ValidAccountType validates whether the account type is supported.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	// domain.AccountType is a named string, so go through the field kind.
	return IsSupported(fl.Field().String())
}
