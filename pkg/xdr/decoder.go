package xdr

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	xdr3 "github.com/stellar/go-xdr/xdr3"
)

// Unmarshaler is implemented by values that can read their canonical XDR form.
type Unmarshaler interface {
	DecodeXDR(d *Decoder) error
}

// Decoder reads XDR values from a byte slice. Every read is checked against
// the remaining input before it reaches the underlying stream decoder, so
// truncation always surfaces as ErrShortBuffer.
type Decoder struct {
	r    *bytes.Reader
	dec  *xdr3.Decoder
	size int
}

// NewDecoder returns a Decoder over data. The slice is not copied.
func NewDecoder(data []byte) *Decoder {
	r := bytes.NewReader(data)
	return &Decoder{r: r, dec: xdr3.NewDecoder(r), size: len(data)}
}

// Remaining reports how many bytes have not been consumed yet.
func (d *Decoder) Remaining() int {
	return d.r.Len()
}

// Offset reports how many bytes have been consumed.
func (d *Decoder) Offset() int {
	return d.size - d.r.Len()
}

func (d *Decoder) need(n int) error {
	if n < 0 || d.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, n, d.Offset(), d.Remaining())
	}
	return nil
}

// Int32 reads a signed 32-bit integer.
func (d *Decoder) Int32() (int32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeInt()
	return v, read(err)
}

// Uint32 reads an unsigned 32-bit integer.
func (d *Decoder) Uint32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeUint()
	return v, read(err)
}

// Int64 reads a signed 64-bit integer.
func (d *Decoder) Int64() (int64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeHyper()
	return v, read(err)
}

// Uint64 reads an unsigned 64-bit integer.
func (d *Decoder) Uint64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v, _, err := d.dec.DecodeUhyper()
	return v, read(err)
}

// Bool reads a boolean or optional presence flag.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Uint32()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrInvalidBool, v)
	}
}

// FixedOpaque reads size bytes plus padding into dst, which must be size bytes long.
func (d *Decoder) FixedOpaque(dst []byte) error {
	b, err := d.padded(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Opaque reads variable-length data of at most maxLen bytes. The result is a
// copy and is never nil.
func (d *Decoder) Opaque(maxLen int) ([]byte, error) {
	return d.variable(maxLen)
}

// String reads a UTF-8 string of at most maxLen bytes.
func (d *Decoder) String(maxLen int) (string, error) {
	b, err := d.variable(maxLen)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// ArrayLen reads the element count of a variable-length array whose elements
// occupy at least minElemSize bytes each. The count is checked against the
// remaining input so a forged length cannot trigger a large allocation.
func (d *Decoder) ArrayLen(maxLen, minElemSize int) (int, error) {
	n, err := d.Uint32()
	if err != nil {
		return 0, err
	}
	if uint64(n) > uint64(maxLen) {
		return 0, fmt.Errorf("%w: %d > %d elements", ErrLengthExceeded, n, maxLen)
	}
	if minElemSize > 0 && int(n)*minElemSize > d.Remaining() {
		return 0, fmt.Errorf("%w: %d elements need at least %d bytes, have %d", ErrShortBuffer, n, int(n)*minElemSize, d.Remaining())
	}
	return int(n), nil
}

// Decode reads a nested value.
func (d *Decoder) Decode(u Unmarshaler) error {
	return u.DecodeXDR(d)
}

func (d *Decoder) variable(maxLen int) ([]byte, error) {
	n, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(maxLen) {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrLengthExceeded, n, maxLen)
	}
	return d.padded(int(n))
}

// padded reads n bytes and their padding as one aligned block and returns
// the first n bytes. Padding must be zero.
func (d *Decoder) padded(n int) ([]byte, error) {
	size := n + padLen(n)
	if err := d.need(size); err != nil {
		return nil, err
	}
	b := make([]byte, size)
	if _, err := d.dec.DecodeFixedOpaqueInplace(b); err != nil {
		return nil, read(err)
	}
	for _, p := range b[n:] {
		if p != 0 {
			return nil, ErrInvalidPadding
		}
	}
	return b[:n:n], nil
}

func read(err error) error {
	if err != nil {
		return fmt.Errorf("xdr: read: %w", err)
	}
	return nil
}
