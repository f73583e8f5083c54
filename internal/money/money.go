// Package money implements the checked, fixed-point monetary values used
// throughout the engine: a strictly-positive Amount (event amounts) and a
// non-negative Balance (the two fields of an account's balances).
//
// Both types wrap github.com/shopspring/decimal. Decimal itself never
// overflows (it is backed by big.Int), so "checked" arithmetic here means
// bounding every value to the range spec.md requires: at least as large as
// a 96-bit signed integer scaled by 10^-4. Any operation that would leave
// that range reports ok=false (NewAmount: an error) instead of panicking
// or wrapping.
package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits the engine preserves.
const Scale = 4

// maxUnscaled is 2^95 - 1, the largest magnitude a 96-bit signed integer
// can hold. MaxValue is that bound scaled by 10^-Scale.
var maxUnscaled = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 95), big.NewInt(1))

// MaxValue is the largest representable Amount or Balance.
var MaxValue = decimal.NewFromBigInt(maxUnscaled, -Scale)

// Zero is the additive identity, useful for comparisons.
var Zero = decimal.NewFromInt(0)

// Amount is a strictly-positive monetary value, used for event amounts.
type Amount struct {
	v decimal.Decimal
}

// NewAmount constructs an Amount from a raw decimal value. It fails when
// the value is zero, negative, or exceeds MaxValue.
func NewAmount(raw decimal.Decimal) (Amount, error) {
	rounded := raw.Round(Scale)
	if !rounded.IsPositive() {
		return Amount{}, fmt.Errorf("money: amount must be strictly positive, got %s", raw.String())
	}
	if rounded.GreaterThan(MaxValue) {
		return Amount{}, fmt.Errorf("money: amount %s exceeds maximum representable value", raw.String())
	}
	return Amount{v: rounded}, nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.v }

// String renders the amount at four fractional digits.
func (a Amount) String() string { return a.v.StringFixed(Scale) }

// Balance is a non-negative monetary value, used for the available and
// held fields of an account. The zero value is the zero balance.
type Balance struct {
	v decimal.Decimal
}

// ZeroBalance returns the zero Balance.
func ZeroBalance() Balance { return Balance{v: Zero} }

// FromAmount lifts an Amount into a Balance of the same magnitude.
func FromAmount(a Amount) Balance { return Balance{v: a.v} }

// Decimal returns the underlying decimal value.
func (b Balance) Decimal() decimal.Decimal { return b.v }

// String renders the balance at four fractional digits.
func (b Balance) String() string { return b.v.StringFixed(Scale) }

// IsZero reports whether the balance is exactly zero.
func (b Balance) IsZero() bool { return b.v.IsZero() }

// LessThan reports whether b < other.
func (b Balance) LessThan(other Balance) bool { return b.v.LessThan(other.v) }

// Add returns b+a, or ok=false on overflow (result would exceed MaxValue).
func (b Balance) Add(a Balance) (Balance, bool) {
	sum := b.v.Add(a.v)
	if sum.GreaterThan(MaxValue) {
		return Balance{}, false
	}
	return Balance{v: sum}, true
}

// Sub returns b-a, or ok=false if the result would go negative.
func (b Balance) Sub(a Balance) (Balance, bool) {
	diff := b.v.Sub(a.v)
	if diff.IsNegative() {
		return Balance{}, false
	}
	return Balance{v: diff}, true
}

// AddAmount is a convenience wrapper for Add(FromAmount(a)).
func (b Balance) AddAmount(a Amount) (Balance, bool) { return b.Add(FromAmount(a)) }

// SubAmount is a convenience wrapper for Sub(FromAmount(a)).
func (b Balance) SubAmount(a Amount) (Balance, bool) { return b.Sub(FromAmount(a)) }
