package txn

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/stellar-txcore/pkg/amount"
	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/network"
	"github.com/goodnatureofminers/stellar-txcore/pkg/safe"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// MaxOperations is the wire limit on operations per transaction.
const MaxOperations = 100

// EnvelopeTypeTx tags the payload of a transaction signature base.
const EnvelopeTypeTx int32 = 2

// minOperationSize is the wire size of an operation with no source and an
// empty body.
const minOperationSize = 8

// Transaction is an ordered batch of operations from one source account.
type Transaction struct {
	Source     keypair.PublicKey
	Fee        amount.Stroops
	Sequence   uint64
	TimeBounds *TimeBounds
	Memo       Memo
	Operations []Operation
}

// Hash is the SHA-256 digest of a signature base.
type Hash [chainhash.HashSize]byte

// Hex renders the hash in byte order.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

// EncodeXDR writes the transaction body.
func (tx Transaction) EncodeXDR(e *xdr.Encoder) error {
	if err := e.Encode(tx.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	fee, err := safe.Uint32(tx.Fee)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFee, err)
	}
	e.Uint32(fee)
	e.Uint64(tx.Sequence)

	e.Bool(tx.TimeBounds != nil)
	if tx.TimeBounds != nil {
		if err := e.Encode(*tx.TimeBounds); err != nil {
			return fmt.Errorf("time bounds: %w", err)
		}
	}
	if err := e.Encode(tx.Memo); err != nil {
		return err
	}

	if len(tx.Operations) > MaxOperations {
		return fmt.Errorf("%w: %d > %d", ErrTooManyOperations, len(tx.Operations), MaxOperations)
	}
	if err := e.ArrayLen(len(tx.Operations), MaxOperations); err != nil {
		return fmt.Errorf("operations: %w", err)
	}
	for i, op := range tx.Operations {
		if err := e.Encode(op); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	// ext: no extension arm is defined beyond 0.
	e.Int32(0)
	return nil
}

// DecodeXDR reads a transaction body.
func (tx *Transaction) DecodeXDR(d *xdr.Decoder) error {
	var out Transaction
	if err := d.Decode(&out.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	fee, err := d.Uint32()
	if err != nil {
		return fmt.Errorf("fee: %w", err)
	}
	out.Fee = amount.Stroops(fee)
	if out.Sequence, err = d.Uint64(); err != nil {
		return fmt.Errorf("sequence: %w", err)
	}

	present, err := d.Bool()
	if err != nil {
		return fmt.Errorf("time bounds: %w", err)
	}
	if present {
		out.TimeBounds = new(TimeBounds)
		if err := d.Decode(out.TimeBounds); err != nil {
			return fmt.Errorf("time bounds: %w", err)
		}
	}
	if err := d.Decode(&out.Memo); err != nil {
		return err
	}

	n, err := d.ArrayLen(MaxOperations, minOperationSize)
	if err != nil {
		return fmt.Errorf("operations: %w", err)
	}
	if n > 0 {
		out.Operations = make([]Operation, n)
	}
	for i := range out.Operations {
		if err := d.Decode(&out.Operations[i]); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	ext, err := d.Int32()
	if err != nil {
		return fmt.Errorf("ext: %w", err)
	}
	if ext != 0 {
		return fmt.Errorf("ext: %w: %d", xdr.ErrUnknownDiscriminant, ext)
	}
	*tx = out
	return nil
}

// SignatureBase returns the bytes whose hash is signed: the network id, the
// transaction envelope tag and the transaction encoding.
func (tx Transaction) SignatureBase(networkID network.ID) ([]byte, error) {
	e := xdr.NewEncoder()
	if err := e.FixedOpaque(networkID[:], network.IDSize); err != nil {
		return nil, err
	}
	e.Int32(EnvelopeTypeTx)
	if err := e.Encode(tx); err != nil {
		return nil, fmt.Errorf("%w: encode transaction: %w", ErrSigning, err)
	}
	if err := e.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return e.Bytes(), nil
}

// Hash returns the SHA-256 digest of the signature base.
func (tx Transaction) Hash(networkID network.ID) (Hash, error) {
	base, err := tx.SignatureBase(networkID)
	if err != nil {
		return Hash{}, err
	}
	return Hash(chainhash.HashH(base)), nil
}

// Sign hashes the transaction for networkID and signs it with every signer.
func (tx Transaction) Sign(networkID network.ID, signers ...Signer) (*SignedTransaction, error) {
	st, err := NewSignedTransaction(tx, networkID)
	if err != nil {
		return nil, err
	}
	for _, s := range signers {
		if err := st.Sign(s); err != nil {
			return nil, err
		}
	}
	return st, nil
}
