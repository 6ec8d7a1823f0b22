package txn

import (
	"fmt"

	"github.com/goodnatureofminers/stellar-txcore/pkg/amount"
	"github.com/goodnatureofminers/stellar-txcore/pkg/safe"
)

// DefaultBaseFee is the per-operation fee in stroops.
const DefaultBaseFee amount.Stroops = 100

// Builder assembles a transaction for a source account.
type Builder struct {
	source     *Account
	baseFee    amount.Stroops
	memo       Memo
	timeBounds *TimeBounds
	operations []Operation
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBaseFee sets the per-operation fee.
func WithBaseFee(fee amount.Stroops) BuilderOption {
	return func(b *Builder) {
		b.baseFee = fee
	}
}

// WithMemo attaches a memo.
func WithMemo(m Memo) BuilderOption {
	return func(b *Builder) {
		b.memo = m
	}
}

// WithTimeBounds limits when the transaction is valid.
func WithTimeBounds(tb TimeBounds) BuilderOption {
	return func(b *Builder) {
		b.timeBounds = &tb
	}
}

// NewBuilder returns a Builder drawing sequence numbers from source.
func NewBuilder(source *Account, opts ...BuilderOption) *Builder {
	b := &Builder{source: source, baseFee: DefaultBaseFee}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddOperations appends operations in order.
func (b *Builder) AddOperations(ops ...Operation) *Builder {
	b.operations = append(b.operations, ops...)
	return b
}

// Build validates the operations, charges baseFee per operation and
// consumes the next sequence number of the source account. The account is
// left untouched when Build fails.
func (b *Builder) Build() (Transaction, error) {
	switch n := len(b.operations); {
	case n == 0:
		return Transaction{}, ErrNoOperations
	case n > MaxOperations:
		return Transaction{}, fmt.Errorf("%w: %d > %d", ErrTooManyOperations, n, MaxOperations)
	}
	fee, err := b.baseFee.Mul(len(b.operations))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidFee, err)
	}
	if _, err := safe.Uint32(fee); err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidFee, err)
	}
	seq, err := b.source.IncrementSequence()
	if err != nil {
		return Transaction{}, err
	}

	var tb *TimeBounds
	if b.timeBounds != nil {
		copied := *b.timeBounds
		tb = &copied
	}
	return Transaction{
		Source:     b.source.ID,
		Fee:        fee,
		Sequence:   seq,
		TimeBounds: tb,
		Memo:       b.memo,
		Operations: append([]Operation(nil), b.operations...),
	}, nil
}
