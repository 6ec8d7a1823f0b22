package txn

import (
	"fmt"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// MaxSignatures is the wire limit on signatures per envelope.
const MaxSignatures = 20

// minSignatureSize is the wire size of a hint plus an empty signature.
const minSignatureSize = 8

// Signer produces Ed25519 signatures. *keypair.KeyPair implements it.
type Signer interface {
	PublicKey() keypair.PublicKey
	Sign(message []byte) ([]byte, error)
}

// DecoratedSignature is a signature together with the hint of the key that
// made it.
type DecoratedSignature struct {
	Hint      keypair.SignatureHint
	Signature []byte
}

// EncodeXDR writes the hint and the signature.
func (s DecoratedSignature) EncodeXDR(e *xdr.Encoder) error {
	if err := e.FixedOpaque(s.Hint[:], len(s.Hint)); err != nil {
		return fmt.Errorf("hint: %w", err)
	}
	if err := e.Opaque(s.Signature, keypair.SignatureSize); err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	return nil
}

// DecodeXDR reads the hint and the signature.
func (s *DecoratedSignature) DecodeXDR(d *xdr.Decoder) error {
	var hint keypair.SignatureHint
	if err := d.FixedOpaque(hint[:]); err != nil {
		return fmt.Errorf("hint: %w", err)
	}
	sig, err := d.Opaque(keypair.SignatureSize)
	if err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	*s = DecoratedSignature{Hint: hint, Signature: sig}
	return nil
}
