package txn

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/stellar-txcore/pkg/safe"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// TimeBounds limits the ledger close times at which a transaction is valid.
// Each side is in Unix seconds; zero leaves that side open.
type TimeBounds struct {
	lower int64
	upper int64
}

// NewTimeBounds validates and returns the window [lower, upper].
func NewTimeBounds(lower, upper int64) (TimeBounds, error) {
	if lower < 0 || upper < 0 {
		return TimeBounds{}, fmt.Errorf("%w: negative bound %d..%d", ErrInvalidTimeBounds, lower, upper)
	}
	if lower != 0 && upper != 0 && lower > upper {
		return TimeBounds{}, fmt.Errorf("%w: lower %d is after upper %d", ErrInvalidTimeBounds, lower, upper)
	}
	return TimeBounds{lower: lower, upper: upper}, nil
}

// TimeBoundsFromTime converts wall-clock bounds. A zero time leaves that
// side open.
func TimeBoundsFromTime(lower, upper time.Time) (TimeBounds, error) {
	return NewTimeBounds(unixOrZero(lower), unixOrZero(upper))
}

// Timeout returns a window that closes d after now.
func Timeout(now time.Time, d time.Duration) (TimeBounds, error) {
	return NewTimeBounds(0, now.Add(d).Unix())
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// Lower returns the earliest valid close time, or 0 when open.
func (tb TimeBounds) Lower() int64 { return tb.lower }

// Upper returns the latest valid close time, or 0 when open.
func (tb TimeBounds) Upper() int64 { return tb.upper }

// EncodeXDR writes the lower then the upper bound as unsigned 64-bit values.
func (tb TimeBounds) EncodeXDR(e *xdr.Encoder) error {
	lower, err := safe.Uint64(tb.lower)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimeBounds, err)
	}
	upper, err := safe.Uint64(tb.upper)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimeBounds, err)
	}
	e.Uint64(lower)
	e.Uint64(upper)
	return nil
}

// DecodeXDR reads and validates both bounds.
func (tb *TimeBounds) DecodeXDR(d *xdr.Decoder) error {
	rawLower, err := d.Uint64()
	if err != nil {
		return fmt.Errorf("min time: %w", err)
	}
	rawUpper, err := d.Uint64()
	if err != nil {
		return fmt.Errorf("max time: %w", err)
	}
	lower, err := safe.Int64(rawLower)
	if err != nil {
		return fmt.Errorf("min time: %w: %w", ErrInvalidTimeBounds, err)
	}
	upper, err := safe.Int64(rawUpper)
	if err != nil {
		return fmt.Errorf("max time: %w: %w", ErrInvalidTimeBounds, err)
	}
	decoded, err := NewTimeBounds(lower, upper)
	if err != nil {
		return err
	}
	*tb = decoded
	return nil
}
