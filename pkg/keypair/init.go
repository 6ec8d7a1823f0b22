package keypair

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrSelfTest is returned by Init when a primitive gives a wrong answer.
var ErrSelfTest = errors.New("keypair: crypto self-test failed")

// RFC 8032 test 1 and the FIPS 180-2 "abc" digest.
const (
	katSeed      = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	katPublic    = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	katSignature = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
	katSHA256    = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init runs a known-answer test of the signing and hashing primitives. It
// may be called any number of times; only the first call does work.
func Init() error {
	initOnce.Do(func() {
		initErr = selfTest()
	})
	return initErr
}

func selfTest() error {
	seed, _ := hex.DecodeString(katSeed)
	wantPublic, _ := hex.DecodeString(katPublic)
	wantSig, _ := hex.DecodeString(katSignature)
	wantDigest, _ := hex.DecodeString(katSHA256)

	priv := ed25519.NewKeyFromSeed(seed)
	if !bytes.Equal(priv.Public().(ed25519.PublicKey), wantPublic) {
		return fmt.Errorf("%w: ed25519 public key", ErrSelfTest)
	}
	if !bytes.Equal(ed25519.Sign(priv, nil), wantSig) {
		return fmt.Errorf("%w: ed25519 signature", ErrSelfTest)
	}
	if !ed25519.Verify(wantPublic, nil, wantSig) {
		return fmt.Errorf("%w: ed25519 verify", ErrSelfTest)
	}
	if !bytes.Equal(chainhash.HashB([]byte("abc")), wantDigest) {
		return fmt.Errorf("%w: sha256", ErrSelfTest)
	}
	return nil
}
