// Package iconpkg provides the fixed palette of objective icons.
package iconpkg

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/fund-manager/internal/domain"
)

// Palette holds every selectable objective icon in display order.
//
// Adding an entry here is the only way to extend the palette.
var Palette = []domain.IconBundle{
	bundle("airplane", "Voyage", "trip"),
	bundle("home", "Maison", "house"),
	bundle("car-sport", "Voiture", "car"),
	bundle("wallet", "Épargne", "savings"),
	bundle("diamond", "Luxe", "jewelry"),
	bundle("bicycle", "Sport", "bike"),
	bundle("trending-up", "Investissement", "tech"),
	bundle("school", "Éducation", "education"),
	bundle("medical", "Santé", "health"),
}

func bundle(name, label, class string) domain.IconBundle {
	return domain.IconBundle{
		Name:          name,
		Label:         label,
		IconClass:     class,
		ProgressClass: class + "-progress",
	}
}

// Find returns the palette entry for the given icon key.
func Find(key string) (domain.IconBundle, bool) {
	for _, b := range Palette {
		if b.Name == key {
			return b, true
		}
	}

	return domain.IconBundle{}, false
}

// DefaultBankIconClass is used for banks without a dedicated icon class.
const DefaultBankIconClass = "bp-icon"

var bankIconClasses = map[string]string{
	"cih": "cih-icon",
	"bp":  "bp-icon",
	"cfg": "cfg-icon",
}

// BankIconClass returns the presentation class of the bank icon.
func BankIconClass(bankID string) string {
	if class, ok := bankIconClasses[bankID]; ok {
		return class
	}

	return DefaultBankIconClass
}

// ValidIcon validates whether the icon key is part of the palette.
var ValidIcon validator.Func = func(fl validator.FieldLevel) bool {
	_, ok := Find(fl.Field().String())
	return ok
}
