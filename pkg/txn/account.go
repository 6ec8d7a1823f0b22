package txn

import (
	"math"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
)

// Account is a source account with the last sequence number it used.
type Account struct {
	ID       keypair.PublicKey
	Sequence uint64
}

// NewAccount returns an account at sequence.
func NewAccount(id keypair.PublicKey, sequence uint64) *Account {
	return &Account{ID: id, Sequence: sequence}
}

// IncrementSequence advances the sequence and returns the new value.
func (a *Account) IncrementSequence() (uint64, error) {
	if a.Sequence == math.MaxUint64 {
		return 0, ErrSequenceOverflow
	}
	a.Sequence++
	return a.Sequence, nil
}
