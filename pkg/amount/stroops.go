package amount

import (
	"fmt"

	"github.com/goodnatureofminers/stellar-txcore/pkg/safe"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// Stroops is an amount in minor units: one unit is 10^-7 of an Amount.
type Stroops int64

// One is the number of stroops in a whole unit.
const One Stroops = 10_000_000

// Mul returns s * n, failing on overflow.
func (s Stroops) Mul(n int) (Stroops, error) {
	v, err := safe.MulInt64(int64(s), int64(n))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return Stroops(v), nil
}

// EncodeXDR writes s as a signed 64-bit integer.
func (s Stroops) EncodeXDR(e *xdr.Encoder) error {
	e.Int64(int64(s))
	return nil
}

// DecodeXDR reads a signed 64-bit integer.
func (s *Stroops) DecodeXDR(d *xdr.Decoder) error {
	v, err := d.Int64()
	if err != nil {
		return err
	}
	*s = Stroops(v)
	return nil
}

// Price is an exchange ratio N/D. A zero denominator is not rejected here.
type Price struct {
	N int32
	D int32
}

// NewPrice returns the ratio n/d.
func NewPrice(n, d int32) Price {
	return Price{N: n, D: d}
}

func (p Price) String() string {
	return fmt.Sprintf("%d/%d", p.N, p.D)
}

// EncodeXDR writes the numerator then the denominator.
func (p Price) EncodeXDR(e *xdr.Encoder) error {
	e.Int32(p.N)
	e.Int32(p.D)
	return nil
}

// DecodeXDR reads the numerator then the denominator.
func (p *Price) DecodeXDR(d *xdr.Decoder) error {
	n, err := d.Int32()
	if err != nil {
		return fmt.Errorf("price numerator: %w", err)
	}
	den, err := d.Int32()
	if err != nil {
		return fmt.Errorf("price denominator: %w", err)
	}
	*p = Price{N: n, D: den}
	return nil
}
