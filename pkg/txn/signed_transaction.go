package txn

import (
	"fmt"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/network"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// SignedTransaction is a transaction envelope: the transaction plus the
// signatures collected for one network. Signatures are only ever appended.
// It is not safe for concurrent use.
type SignedTransaction struct {
	tx         Transaction
	signatures []DecoratedSignature

	bound     bool
	networkID network.ID
	hash      Hash
}

// NewSignedTransaction binds tx to networkID and computes its hash.
func NewSignedTransaction(tx Transaction, networkID network.ID) (*SignedTransaction, error) {
	st := &SignedTransaction{tx: tx}
	if err := st.BindNetwork(networkID); err != nil {
		return nil, err
	}
	return st, nil
}

// BindNetwork sets the network an envelope is signed for. Decoded envelopes
// start unbound. Rebinding to a different network is refused once
// signatures exist.
func (st *SignedTransaction) BindNetwork(networkID network.ID) error {
	if st.bound {
		if st.networkID == networkID {
			return nil
		}
		if len(st.signatures) > 0 {
			return fmt.Errorf("%w: bound to %s", ErrNetworkMismatch, st.networkID)
		}
	}
	hash, err := st.tx.Hash(networkID)
	if err != nil {
		return err
	}
	st.bound, st.networkID, st.hash = true, networkID, hash
	return nil
}

// Network returns the bound network id.
func (st *SignedTransaction) Network() (network.ID, bool) {
	return st.networkID, st.bound
}

// Transaction returns the signed transaction.
func (st *SignedTransaction) Transaction() Transaction {
	return st.tx
}

// Signatures returns a copy of the collected signatures.
func (st *SignedTransaction) Signatures() []DecoratedSignature {
	return append([]DecoratedSignature(nil), st.signatures...)
}

// Hash returns the cached transaction hash.
func (st *SignedTransaction) Hash() (Hash, error) {
	if !st.bound {
		return Hash{}, ErrNetworkRequired
	}
	return st.hash, nil
}

// Sign appends a signature of the cached hash by signer.
func (st *SignedTransaction) Sign(signer Signer) error {
	if !st.bound {
		return ErrNetworkRequired
	}
	if len(st.signatures) >= MaxSignatures {
		return fmt.Errorf("%w: limit is %d", ErrTooManySignatures, MaxSignatures)
	}
	sig, err := signer.Sign(st.hash[:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSigning, err)
	}
	if len(sig) != keypair.SignatureSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidSignature, len(sig))
	}
	st.signatures = append(st.signatures, DecoratedSignature{
		Hint:      signer.PublicKey().Hint(),
		Signature: sig,
	})
	return nil
}

// AddSignature appends a signature produced elsewhere.
func (st *SignedTransaction) AddSignature(sig DecoratedSignature) error {
	if len(sig.Signature) != keypair.SignatureSize {
		return fmt.Errorf("%w: %d bytes", ErrInvalidSignature, len(sig.Signature))
	}
	if len(st.signatures) >= MaxSignatures {
		return fmt.Errorf("%w: limit is %d", ErrTooManySignatures, MaxSignatures)
	}
	st.signatures = append(st.signatures, sig)
	return nil
}

// Verify checks that some signature with pk's hint is a valid signature of
// the hash by pk.
func (st *SignedTransaction) Verify(pk keypair.PublicKey) error {
	if !st.bound {
		return ErrNetworkRequired
	}
	hint := pk.Hint()
	for _, sig := range st.signatures {
		if sig.Hint == hint && pk.Verify(st.hash[:], sig.Signature) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSignatureNotFound, pk.Address())
}

// EncodeXDR writes the transaction followed by its signatures.
func (st *SignedTransaction) EncodeXDR(e *xdr.Encoder) error {
	if err := e.Encode(st.tx); err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	if err := e.ArrayLen(len(st.signatures), MaxSignatures); err != nil {
		return fmt.Errorf("signatures: %w", err)
	}
	for i, sig := range st.signatures {
		if err := e.Encode(sig); err != nil {
			return fmt.Errorf("signature %d: %w", i, err)
		}
	}
	return nil
}

// DecodeXDR reads an envelope. The result is not bound to a network.
func (st *SignedTransaction) DecodeXDR(d *xdr.Decoder) error {
	var tx Transaction
	if err := d.Decode(&tx); err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	n, err := d.ArrayLen(MaxSignatures, minSignatureSize)
	if err != nil {
		return fmt.Errorf("signatures: %w", err)
	}
	var sigs []DecoratedSignature
	if n > 0 {
		sigs = make([]DecoratedSignature, n)
	}
	for i := range sigs {
		if err := d.Decode(&sigs[i]); err != nil {
			return fmt.Errorf("signature %d: %w", i, err)
		}
	}
	*st = SignedTransaction{tx: tx, signatures: sigs}
	return nil
}

// DecodeEnvelope decodes a Base64 envelope and binds it to networkID.
func DecodeEnvelope(envelope string, networkID network.ID) (*SignedTransaction, error) {
	st := new(SignedTransaction)
	if err := xdr.UnmarshalBase64(envelope, st); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if err := st.BindNetwork(networkID); err != nil {
		return nil, err
	}
	return st, nil
}
