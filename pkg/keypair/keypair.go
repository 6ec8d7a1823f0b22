package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/goodnatureofminers/stellar-txcore/pkg/network"
	"github.com/goodnatureofminers/stellar-txcore/pkg/strkey"
)

// SeedSize is the length of a raw secret seed.
const SeedSize = ed25519.SeedSize

// KeyPair is an Ed25519 signing key. The seed never leaves the value except
// through Seed and RawSeed.
type KeyPair struct {
	seed    [SeedSize]byte
	public  PublicKey
	private ed25519.PrivateKey
}

// FromSecretSeed parses an "S..." seed.
func FromSecretSeed(seed string) (*KeyPair, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return FromRawSeed(raw)
}

// MustFromSecretSeed is like FromSecretSeed but panics on error.
func MustFromSecretSeed(seed string) *KeyPair {
	kp, err := FromSecretSeed(seed)
	if err != nil {
		panic(err)
	}
	return kp
}

// FromRawSeed derives the key pair from 32 seed bytes.
func FromRawSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSeed, len(seed))
	}
	var raw [SeedSize]byte
	copy(raw[:], seed)
	return fromSeed(raw), nil
}

// FromNetwork derives the key pair whose seed is the network id. On the
// public and test networks it is the key of the network's root account.
func FromNetwork(n network.Network) *KeyPair {
	return fromSeed(n.ID())
}

func fromSeed(seed [SeedSize]byte) *KeyPair {
	kp := &KeyPair{seed: seed, private: ed25519.NewKeyFromSeed(seed[:])}
	copy(kp.public[:], kp.private.Public().(ed25519.PublicKey))
	return kp
}

// Random generates a key pair from r. A nil r uses crypto/rand.
func Random(r io.Reader) (*KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}
	var seed [SeedSize]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return FromRawSeed(seed[:])
}

// PublicKey returns the public half.
func (kp *KeyPair) PublicKey() PublicKey {
	return kp.public
}

// Address renders the public key as a "G..." account id.
func (kp *KeyPair) Address() string {
	return kp.public.Address()
}

// Seed renders the secret seed as an "S..." string.
func (kp *KeyPair) Seed() string {
	s, err := strkey.Encode(strkey.VersionByteSeed, kp.seed[:])
	if err != nil {
		panic(err)
	}
	return s
}

// RawSeed returns a copy of the seed bytes.
func (kp *KeyPair) RawSeed() []byte {
	return append([]byte(nil), kp.seed[:]...)
}

// Hint returns the signature hint of the public key.
func (kp *KeyPair) Hint() SignatureHint {
	return kp.public.Hint()
}

// Sign signs message. The error is always nil for an in-memory key; it is
// part of the signature so remote signers share the method set.
func (kp *KeyPair) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(kp.private, message), nil
}

// Verify checks sig against the public half.
func (kp *KeyPair) Verify(message, sig []byte) bool {
	return kp.public.Verify(message, sig)
}

// String renders only the address. The seed is never formatted.
func (kp *KeyPair) String() string {
	return kp.public.Address()
}
