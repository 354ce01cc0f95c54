// Package demo holds the sample ledger loaded when the app starts with
// SEED_DEMO enabled.
package demo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/pkg/iconpkg"
)

// Seeder stores entities that already carry identifiers.
type Seeder interface {
	Seed(ctx context.Context, banks []domain.Bank, objectives []domain.Objective) error
}

// Banks returns the sample banks in display order.
func Banks() []domain.Bank {
	return []domain.Bank{
		bank("cih", "CIH Bank", 182000, domain.AccountTypePersonal, "CIH"),
		bank("bp", "Banque Populaire", 4010, domain.AccountTypeCurrent, "BP"),
		bank("cfg", "CFG Bank", 500, domain.AccountTypeCurrent, "CFG"),
		bank("barid", "FATHER Bank", 40000, domain.AccountTypeCurrent, "FTR"),
	}
}

// Objectives returns the sample objectives, grouped by bank.
func Objectives() []domain.Objective {
	return []domain.Objective{
		objective("voyage", "Voyage Fund", 2000, 10000, "cih", "airplane"),
		objective("appartement", "Appartement Fund", 40000, 200000, "cih", "home"),
		objective("epargne", "Épargne Goal", 50000, 100000, "cih", "wallet"),
		objective("maintenance", "Voiture Maintenance", 1, 5000, "bp", "car-sport"),
		objective("special-purchase", "Special Purchase (WL)", 4000, 4000, "bp", "diamond"),
		objective("velo", "Vélo Fund", 1, 2000, "bp", "bicycle"),
		objective("bourse", "La bourse", 500, 100000, "cfg", "trending-up"),
		objective("app", "L'appartement", 40000, 40000, "barid", "home"),
	}
}

// Load seeds s with the sample ledger.
func Load(ctx context.Context, s Seeder) error {
	return s.Seed(ctx, Banks(), Objectives())
}

func bank(id, name string, balance int64, t domain.AccountType, icon string) domain.Bank {
	return domain.Bank{
		ID:          id,
		Name:        name,
		Balance:     decimal.NewFromInt(balance),
		AccountType: t,
		Icon:        icon,
	}
}

func objective(id, name string, current, target int64, bankID, icon string) domain.Objective {
	b, _ := iconpkg.Find(icon)

	return domain.Objective{
		ID:            id,
		Name:          name,
		CurrentAmount: decimal.NewFromInt(current),
		TargetAmount:  decimal.NewFromInt(target),
		BankID:        bankID,
		Icon:          b.Name,
		IconClass:     b.IconClass,
		ProgressClass: b.ProgressClass,
	}
}
