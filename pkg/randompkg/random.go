// Package randompkg provides functionality for generating random application items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/pkg/accounttypepkg"
	"github.com/go-petr/fund-manager/pkg/iconpkg"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random decimal number between min and max rounded to 2 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*100) / 100
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random entity name that satisfies the minimum length.
func Name() string {
	return String(8)
}

// Icon generates a random bank icon tag of up to 5 characters.
func Icon() string {
	return strings.ToUpper(String(int(Intn(5)) + 1))
}

// MoneyAmountBetween generates a random amount of money between min and max.
func MoneyAmountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max))
}

// AccountType picks a random supported account type.
func AccountType() domain.AccountType {
	types := accounttypepkg.SupportedAccountTypes
	return types[Intn(len(types))]
}

// IconType picks a random palette key.
func IconType() string {
	return iconpkg.Palette[Intn(len(iconpkg.Palette))].Name
}

// CreateBankParams returns valid random bank input.
func CreateBankParams() domain.CreateBankParams {
	return domain.CreateBankParams{
		Name:        Name(),
		Balance:     MoneyAmountBetween(0, 200_000),
		AccountType: AccountType(),
		Icon:        Icon(),
	}
}

// CreateObjectiveParams returns valid random objective input for the given bank.
func CreateObjectiveParams(bankID string) domain.CreateObjectiveParams {
	target := MoneyAmountBetween(1, 100_000)

	return domain.CreateObjectiveParams{
		Name:          Name(),
		CurrentAmount: target.Mul(decimal.NewFromFloat(Float64())).Floor(),
		TargetAmount:  target,
		BankID:        bankID,
		IconType:      IconType(),
	}
}
