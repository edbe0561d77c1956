package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not initialized
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or MoneyFromString")

// Money is a nonnegative exact-decimal magnitude used for prices, weights and
// delivery costs. It wraps shopspring/decimal so arithmetic never goes through
// binary floating point.
//
// The zero value is invalid; construct through NewMoney or MoneyFromString.
type Money struct {
	amount decimal.Decimal

	isConstructed bool
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a decimal string such as "199.99".
// Used when reading monetary values from requests or the database.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String returns the plain decimal representation, e.g. "199.99".
func (m Money) String() string {
	return m.amount.String()
}

// IsEqual reports whether two Money values represent the same amount.
// "1.5" and "1.50" compare equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
