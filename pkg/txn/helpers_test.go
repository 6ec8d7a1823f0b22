package txn

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

const (
	testIssuer = "GCLDNMHZTEY6PUYQBYOVERBBZ2W3RLMYOSZWHAMY5R4YW2N6MM4LFA72"
	testSeed   = "SDFRU2NGDPXYIY67BVS6L6W4OY33HCFCEJQ73TZZPR3IDYVVI7BVPV5Q"
)

func issuer() keypair.PublicKey {
	return keypair.MustParseAddress(testIssuer)
}

func encodeBase64(t *testing.T, m xdr.Marshaler) string {
	t.Helper()
	s, err := xdr.MarshalBase64(m)
	if err != nil {
		t.Fatalf("MarshalBase64() error = %v", err)
	}
	return s
}

// reencode decodes s and returns the value with its Base64 encoding.
func reencode[T any, P interface {
	*T
	xdr.Marshaler
	xdr.Unmarshaler
}](t *testing.T, s string) (P, string) {
	t.Helper()
	var v T
	p := P(&v)
	if err := xdr.UnmarshalBase64(s, p); err != nil {
		t.Fatalf("UnmarshalBase64() error = %v", err)
	}
	return p, encodeBase64(t, p)
}

// roundTrip encodes in, decodes the result into a fresh T and requires it to
// be deeply equal to in.
func roundTrip[T any, P interface {
	*T
	xdr.Unmarshaler
}](t *testing.T, in xdr.Marshaler, want T) {
	t.Helper()
	data, err := xdr.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got T
	if err := xdr.Unmarshal(data, P(&got)); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip = %#v, want %#v", got, want)
	}
}

func wantErrIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

type stubSigner struct {
	pk  keypair.PublicKey
	sig []byte
	err error
}

func (s stubSigner) PublicKey() keypair.PublicKey { return s.pk }

func (s stubSigner) Sign([]byte) ([]byte, error) { return s.sig, s.err }
