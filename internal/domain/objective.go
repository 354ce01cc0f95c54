package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrObjectiveNotFound indicates that the objective is not found.
	ErrObjectiveNotFound = errors.New("objective not found")
	// ErrIconNotFound indicates that the icon key is not part of the palette.
	ErrIconNotFound = errors.New("icon not found")
)

var hundred = decimal.NewFromInt(100)

// IconBundle is a palette entry: an icon symbol plus its presentation classes.
type IconBundle struct {
	Name          string `json:"name"`
	Label         string `json:"label"`
	IconClass     string `json:"icon_class"`
	ProgressClass string `json:"progress_class"`
}

// Objective holds a savings goal attached to a bank.
type Objective struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetAmount  decimal.Decimal `json:"target_amount"` // must be positive
	BankID        string          `json:"bank_id"`
	Icon          string          `json:"icon"`
	IconClass     string          `json:"icon_class"`
	ProgressClass string          `json:"progress_class"`
}

// CreateObjectiveParams is the input data to create an objective.
type CreateObjectiveParams struct {
	Name          string          `json:"name" validate:"required,min=2"`
	CurrentAmount decimal.Decimal `json:"current_amount" validate:"dgte=0"`
	TargetAmount  decimal.Decimal `json:"target_amount" validate:"dgte=1"`
	BankID        string          `json:"bank_id" validate:"required"`
	IconType      string          `json:"icon_type" validate:"required,icon"`
}

// ObjectiveProgress pairs an objective with its completion percentage.
type ObjectiveProgress struct {
	Objective Objective `json:"objective"`
	Progress  int64     `json:"progress"`
}

// Progress returns round(current / target * 100).
//
// The result is not capped, so an objective funded beyond its target reports
// more than 100. A non-positive target yields 0.
func Progress(current, target decimal.Decimal) int64 {
	if !target.IsPositive() {
		return 0
	}

	return current.Div(target).Mul(hundred).Round(0).IntPart()
}

// Progress returns the completion percentage of the objective.
func (o Objective) Progress() int64 {
	return Progress(o.CurrentAmount, o.TargetAmount)
}
