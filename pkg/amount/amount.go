// Package amount implements the fixed-scale decimal amounts of the ledger and
// their integer minor-unit form, stroops.
package amount

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits carried by every Amount.
const Scale = 7

// maxExponent bounds the decimal exponent accepted by Parse so that text such
// as "1e999999999" cannot force a huge rescale.
const maxExponent = 64

var (
	ErrInvalidAmount   = errors.New("amount: invalid decimal")
	ErrTooManyDecimals = errors.New("amount: more than 7 fractional digits")
	ErrInvalidScale    = errors.New("amount: scale is not 7")
	ErrOverflow        = errors.New("amount: value does not fit int64 stroops")
)

var scaleFactor = big.NewInt(10)

// Amount is a decimal quantity with exactly Scale fractional digits. Values
// built through Parse or FromStroops always carry that scale, so comparisons
// never depend on how the value was written. The zero value is 0.
type Amount struct {
	inner decimal.Decimal
}

// Parse reads a decimal string. More than Scale fractional digits are
// rejected rather than rounded.
func Parse(text string) (Amount, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, text, err)
	}
	if d.Exponent() < -Scale {
		return Amount{}, fmt.Errorf("%w: %q", ErrTooManyDecimals, text)
	}
	if d.Exponent() > maxExponent {
		return Amount{}, fmt.Errorf("%w: %q: exponent too large", ErrInvalidAmount, text)
	}
	return Amount{inner: rescale(d)}, nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(text string) Amount {
	a, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return a
}

// FromStroops returns the Amount worth s minor units.
func FromStroops(s Stroops) Amount {
	return Amount{inner: decimal.New(int64(s), -Scale)}
}

// Stroops converts the amount to minor units.
func (a Amount) Stroops() (Stroops, error) {
	if a.inner.IsZero() {
		return 0, nil
	}
	if a.inner.Exponent() != -Scale {
		return 0, fmt.Errorf("%w: exponent %d", ErrInvalidScale, a.inner.Exponent())
	}
	coef := a.inner.Coefficient()
	if !coef.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, a)
	}
	return Stroops(coef.Int64()), nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.inner
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.inner.Cmp(b.inner)
}

// Equal reports whether a and b denote the same quantity.
func (a Amount) Equal(b Amount) bool {
	return a.inner.Equal(b.inner)
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.inner.LessThan(b.inner)
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a.inner.IsPositive()
}

// String renders the amount with all Scale fractional digits.
func (a Amount) String() string {
	return a.inner.StringFixed(Scale)
}

// MarshalText implements encoding.TextMarshaler.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with Parse semantics.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// rescale widens d to exactly Scale fractional digits. d must not have more.
func rescale(d decimal.Decimal) decimal.Decimal {
	shift := int64(d.Exponent()) + Scale
	coef := d.Coefficient()
	if shift > 0 {
		coef.Mul(coef, new(big.Int).Exp(scaleFactor, big.NewInt(shift), nil))
	}
	return decimal.NewFromBigInt(coef, -Scale)
}
