package kernel

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits kept for every amount.
const MoneyScale int32 = 2

// MaxMoney is the largest amount that fits the numeric(10,2) storage columns.
var MaxMoney = decimal.New(9999999999, -MoneyScale)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is an immutable, non-negative decimal amount rounded to MoneyScale
// fraction digits (half away from zero).
//
// Example:
//
//	soup, _ := kernel.MoneyFromString("3.50")
//	bread, _ := kernel.MoneyFromString("1.25")
//	total, _ := soup.Add(bread)
//	fmt.Println(total) // 4.75
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount.
// Negative amounts and amounts above MaxMoney are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromString parses a decimal string such as "3.50" or "12".
func MoneyFromString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("money")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q is not a decimal", s))
	}

	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// SumMoney adds all values together. The sum of no values is zero.
// It fails as soon as the running total exceeds MaxMoney.
func SumMoney(values ...Money) (Money, error) {
	total := ZeroMoney()
	for _, v := range values {
		var err error
		if total, err = total.Add(v); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// Validate reports whether m was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of m and other, or an out of range error when the
// sum exceeds MaxMoney.
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.amount.Add(other.amount))
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts numerically, so 4.7 equals 4.70.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with exactly MoneyScale fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("money", amount.String(), "0.00", MaxMoney.StringFixed(MoneyScale))
	}

	rounded := amount.Round(MoneyScale)
	if rounded.GreaterThan(MaxMoney) {
		return errs.NewValueIsOutOfRangeError("money", amount.String(), "0.00", MaxMoney.StringFixed(MoneyScale))
	}

	m.amount = rounded
	return nil
}
