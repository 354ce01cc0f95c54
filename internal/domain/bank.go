// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrBankNotFound indicates that the bank is not found.
	ErrBankNotFound = errors.New("bank not found")
	// ErrDuplicateID indicates that the generated identifier is already taken.
	ErrDuplicateID = errors.New("identifier already exists")
	// ErrNotConfirmed indicates that the user cancelled a destructive operation.
	ErrNotConfirmed = errors.New("operation not confirmed")
)

// UnknownBankName is shown in place of a bank name that cannot be resolved.
const UnknownBankName = "Unknown bank"

// AccountType classifies a bank account.
type AccountType string

// Supported account types.
const (
	AccountTypePersonal   AccountType = "Personal Account"
	AccountTypeCurrent    AccountType = "Current Account"
	AccountTypeSavings    AccountType = "Savings Account"
	AccountTypeBusiness   AccountType = "Business Account"
	AccountTypeInvestment AccountType = "Investment Account"
)

// Bank holds a money container with its current balance.
type Bank struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	AccountType AccountType     `json:"account_type"`
	Icon        string          `json:"icon"`
}

// CreateBankParams is the input data to create a bank.
type CreateBankParams struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Balance     decimal.Decimal `json:"balance" validate:"dgte=0"`
	AccountType AccountType     `json:"account_type" validate:"required,accounttype"`
	Icon        string          `json:"icon" validate:"required,max=5"`
}

// BankOverview is a bank with its objectives, as shown on the dashboard.
type BankOverview struct {
	Bank       Bank                `json:"bank"`
	IconClass  string              `json:"icon_class"`
	Expanded   bool                `json:"expanded"`
	Objectives []ObjectiveProgress `json:"objectives"`
}

// Overview is the dashboard read model.
type Overview struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
	Banks        []BankOverview  `json:"banks"`
}
