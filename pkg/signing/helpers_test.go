package signing

import (
	"encoding/base64"
	"testing"

	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

func mustDecoder(t *testing.T, s string) *xdr.Decoder {
	t.Helper()
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	return xdr.NewDecoder(b)
}
