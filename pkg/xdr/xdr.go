package xdr

import (
	"encoding/base64"
	"fmt"
)

// Marshal returns the canonical encoding of m.
func Marshal(m Marshaler) ([]byte, error) {
	e := NewEncoder()
	if err := m.EncodeXDR(e); err != nil {
		return nil, err
	}
	if err := e.Err(); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes data into u. Every byte of data must be consumed.
func Unmarshal(data []byte, u Unmarshaler) error {
	d := NewDecoder(data)
	if err := u.DecodeXDR(d); err != nil {
		return err
	}
	if d.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes left at offset %d", ErrTrailingBytes, d.Remaining(), d.Offset())
	}
	return nil
}

// MarshalBase64 returns the standard Base64 rendering of the encoding of m.
func MarshalBase64(m Marshaler) (string, error) {
	b, err := Marshal(m)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// UnmarshalBase64 decodes standard Base64 text and then the XDR value it carries.
func UnmarshalBase64(s string, u Unmarshaler) error {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return Unmarshal(b, u)
}
