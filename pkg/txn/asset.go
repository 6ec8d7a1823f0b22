package txn

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// AssetType is the wire discriminant of an asset.
type AssetType int32

const (
	AssetTypeNative AssetType = iota
	AssetTypeCreditAlphanum4
	AssetTypeCreditAlphanum12
)

const (
	alphanum4Size  = 4
	alphanum12Size = 12
)

// Asset is either the native asset or a credit asset identified by a code
// and an issuer. The zero value is the native asset. Assets compare with ==.
type Asset struct {
	kind   AssetType
	code   string
	issuer keypair.PublicKey
}

// NativeAsset returns the network's native asset.
func NativeAsset() Asset {
	return Asset{}
}

// NewCreditAsset returns a credit asset. The code must be 1 to 12 bytes of
// printable UTF-8. Codes up to 4 bytes use the short wire arm.
func NewCreditAsset(code string, issuer keypair.PublicKey) (Asset, error) {
	if err := validateAssetCode(code); err != nil {
		return Asset{}, err
	}
	kind := AssetTypeCreditAlphanum12
	if len(code) <= alphanum4Size {
		kind = AssetTypeCreditAlphanum4
	}
	return Asset{kind: kind, code: code, issuer: issuer}, nil
}

// MustCreditAsset is like NewCreditAsset but panics on error.
func MustCreditAsset(code string, issuer keypair.PublicKey) Asset {
	a, err := NewCreditAsset(code, issuer)
	if err != nil {
		panic(err)
	}
	return a
}

func validateAssetCode(code string) error {
	switch {
	case len(code) == 0:
		return fmt.Errorf("%w: empty", ErrInvalidAssetCode)
	case len(code) > alphanum12Size:
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidAssetCode, code, alphanum12Size)
	case !utf8.ValidString(code):
		return fmt.Errorf("%w: not valid utf-8", ErrInvalidAssetCode)
	case strings.IndexFunc(code, notPrintable) >= 0:
		return fmt.Errorf("%w: %q has a non-printable character", ErrInvalidAssetCode, code)
	}
	return nil
}

func notPrintable(r rune) bool {
	return !unicode.IsPrint(r)
}

// Type returns the wire arm of the asset.
func (a Asset) Type() AssetType {
	return a.kind
}

// IsNative reports whether a is the native asset.
func (a Asset) IsNative() bool {
	return a.kind == AssetTypeNative
}

// Code returns the asset code, or "" for the native asset.
func (a Asset) Code() string {
	return a.code
}

// Issuer returns the issuing account of a credit asset.
func (a Asset) Issuer() (keypair.PublicKey, bool) {
	if a.IsNative() {
		return keypair.PublicKey{}, false
	}
	return a.issuer, true
}

// String renders "native" or "CODE:ISSUER".
func (a Asset) String() string {
	if a.IsNative() {
		return "native"
	}
	return a.code + ":" + a.issuer.Address()
}

// MarshalText renders the asset as String does.
func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// EncodeXDR writes the asset union.
func (a Asset) EncodeXDR(e *xdr.Encoder) error {
	var size int
	switch a.kind {
	case AssetTypeNative:
		e.Int32(int32(AssetTypeNative))
		return nil
	case AssetTypeCreditAlphanum4:
		size = alphanum4Size
	case AssetTypeCreditAlphanum12:
		size = alphanum12Size
	default:
		return fmt.Errorf("asset type: %w: %d", xdr.ErrUnknownDiscriminant, a.kind)
	}
	if err := validateAssetCode(a.code); err != nil {
		return err
	}
	e.Int32(int32(a.kind))
	field := make([]byte, size)
	copy(field, a.code)
	if err := e.FixedOpaque(field, size); err != nil {
		return fmt.Errorf("asset code: %w", err)
	}
	return e.Encode(a.issuer)
}

// DecodeXDR reads the asset union. The code field is cut at its first NUL
// and validated again, so the arm of the result follows the code length.
func (a *Asset) DecodeXDR(d *xdr.Decoder) error {
	kind, err := d.Int32()
	if err != nil {
		return fmt.Errorf("asset type: %w", err)
	}
	var field []byte
	switch AssetType(kind) {
	case AssetTypeNative:
		*a = NativeAsset()
		return nil
	case AssetTypeCreditAlphanum4:
		field = make([]byte, alphanum4Size)
	case AssetTypeCreditAlphanum12:
		field = make([]byte, alphanum12Size)
	default:
		return fmt.Errorf("asset type: %w: %d", xdr.ErrUnknownDiscriminant, kind)
	}
	if err := d.FixedOpaque(field); err != nil {
		return fmt.Errorf("asset code: %w", err)
	}
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	var issuer keypair.PublicKey
	if err := d.Decode(&issuer); err != nil {
		return fmt.Errorf("asset issuer: %w", err)
	}
	decoded, err := NewCreditAsset(string(field), issuer)
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}
