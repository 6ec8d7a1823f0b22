// Package network derives the 32-byte network ids that scope every
// signature to one network.
package network

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	PublicPassphrase = "Public Global Stellar Network ; September 2015"
	TestPassphrase   = "Test SDF Network ; September 2015"
)

// IDSize is the length of a network id.
const IDSize = chainhash.HashSize

var (
	ErrInvalidNetworkID = errors.New("network: id must be 32 bytes")
	ErrUnknownNetwork   = errors.New("network: unknown network")
)

// ID is the SHA-256 digest of a network passphrase.
type ID [IDSize]byte

// IDFromBytes copies a raw id.
func IDFromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != IDSize {
		return id, fmt.Errorf("%w: got %d", ErrInvalidNetworkID, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// IDFromHex parses a hex-encoded id.
func IDFromHex(s string) (ID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrInvalidNetworkID, err)
	}
	return IDFromBytes(b)
}

// Hex renders the id as lower-case hex in byte order.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	return id.Hex()
}

// Network pairs a passphrase with its id.
type Network struct {
	passphrase string
	id         ID
}

// New hashes passphrase once and returns the resulting network.
func New(passphrase string) Network {
	return Network{passphrase: passphrase, id: ID(chainhash.HashH([]byte(passphrase)))}
}

var (
	public  = New(PublicPassphrase)
	testnet = New(TestPassphrase)
)

// Public returns the public network.
func Public() Network { return public }

// Testnet returns the test network.
func Testnet() Network { return testnet }

// ByName resolves a configured network name.
func ByName(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "public", "pubnet", "mainnet":
		return public, nil
	case "test", "testnet":
		return testnet, nil
	default:
		return Network{}, fmt.Errorf("%w %q", ErrUnknownNetwork, name)
	}
}

// Passphrase returns the passphrase the id was derived from.
func (n Network) Passphrase() string {
	return n.passphrase
}

// ID returns the network id.
func (n Network) ID() ID {
	return n.id
}

// Name returns a short label for logs and metrics.
func (n Network) Name() string {
	switch n.passphrase {
	case PublicPassphrase:
		return "public"
	case TestPassphrase:
		return "testnet"
	case "":
		return "unknown"
	default:
		return "custom"
	}
}

func (n Network) String() string {
	return n.Name()
}
