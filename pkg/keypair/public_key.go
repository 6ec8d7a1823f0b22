// Package keypair holds Ed25519 account keys: the public key that appears on
// the wire and the key pair that signs transaction hashes.
package keypair

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/stellar-txcore/pkg/strkey"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// PublicKeyTypeEd25519 is the only public key arm accepted on the wire.
const PublicKeyTypeEd25519 int32 = 0

// SignatureSize is the length of every Ed25519 signature.
const SignatureSize = ed25519.SignatureSize

var (
	ErrInvalidPublicKey = errors.New("keypair: invalid public key")
	ErrInvalidSeed      = errors.New("keypair: invalid secret seed")
)

// PublicKey is a raw 32-byte Ed25519 public key.
type PublicKey [ed25519.PublicKeySize]byte

// ParseAddress decodes a "G..." account id.
func ParseAddress(address string) (PublicKey, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	var pk PublicKey
	copy(pk[:], raw)
	return pk, nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(address string) PublicKey {
	pk, err := ParseAddress(address)
	if err != nil {
		panic(err)
	}
	return pk
}

// PublicKeyFromBytes copies a raw key.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != len(pk) {
		return pk, fmt.Errorf("%w: %d bytes", ErrInvalidPublicKey, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// Address renders the key as a "G..." account id.
func (pk PublicKey) Address() string {
	s, err := strkey.Encode(strkey.VersionByteAccountID, pk[:])
	if err != nil {
		// 32-byte payload under a known version byte always encodes.
		panic(err)
	}
	return s
}

func (pk PublicKey) String() string {
	return pk.Address()
}

// Hint returns the last four bytes of the key.
func (pk PublicKey) Hint() SignatureHint {
	var h SignatureHint
	copy(h[:], pk[len(pk)-len(h):])
	return h
}

// Verify reports whether sig is a valid signature of message by pk.
func (pk PublicKey) Verify(message, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pk[:]), message, sig)
}

// EncodeXDR writes the key as the ed25519 arm of the public key union.
func (pk PublicKey) EncodeXDR(e *xdr.Encoder) error {
	e.Int32(PublicKeyTypeEd25519)
	return e.FixedOpaque(pk[:], len(pk))
}

// DecodeXDR reads the public key union. Only the ed25519 arm is accepted.
func (pk *PublicKey) DecodeXDR(d *xdr.Decoder) error {
	kind, err := d.Int32()
	if err != nil {
		return fmt.Errorf("public key type: %w", err)
	}
	if kind != PublicKeyTypeEd25519 {
		return fmt.Errorf("public key type: %w: %d", xdr.ErrUnknownDiscriminant, kind)
	}
	if err := d.FixedOpaque(pk[:]); err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	return nil
}

// MarshalText renders the address, so keys read naturally in JSON.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.Address()), nil
}

// UnmarshalText parses an address.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// SignatureHint identifies which key produced a decorated signature.
type SignatureHint [4]byte

// String renders the hint as upper-case hex.
func (h SignatureHint) String() string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}
