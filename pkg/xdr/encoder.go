package xdr

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	xdr3 "github.com/stellar/go-xdr/xdr3"
)

// Marshaler is implemented by values that can write their canonical XDR form.
type Marshaler interface {
	EncodeXDR(e *Encoder) error
}

// Encoder appends XDR values to an in-memory buffer. The fixed-width writers
// do not return errors; the first failure is kept and reported by Err.
type Encoder struct {
	buf bytes.Buffer
	enc *xdr3.Encoder
	err error
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	e := &Encoder{}
	e.enc = xdr3.NewEncoder(&e.buf)
	return e
}

// Bytes returns the encoded data. The slice aliases the encoder's buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len reports the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Err returns the first write error, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Int32 writes a signed 32-bit integer. Enum and union discriminants use it too.
func (e *Encoder) Int32(v int32) {
	e.keep(e.enc.EncodeInt(v))
}

// Uint32 writes an unsigned 32-bit integer.
func (e *Encoder) Uint32(v uint32) {
	e.keep(e.enc.EncodeUint(v))
}

// Int64 writes a signed 64-bit integer ("hyper").
func (e *Encoder) Int64(v int64) {
	e.keep(e.enc.EncodeHyper(v))
}

// Uint64 writes an unsigned 64-bit integer ("unsigned hyper").
func (e *Encoder) Uint64(v uint64) {
	e.keep(e.enc.EncodeUhyper(v))
}

// Bool writes v as the integer 0 or 1. It is also the presence flag of an optional.
func (e *Encoder) Bool(v bool) {
	e.keep(e.enc.EncodeBool(v))
}

// FixedOpaque writes exactly size bytes of b followed by zero padding.
func (e *Encoder) FixedOpaque(b []byte, size int) error {
	if len(b) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFixedLengthMismatch, len(b), size)
	}
	return e.write(e.enc.EncodeFixedOpaque(b))
}

// Opaque writes variable-length data of at most maxLen bytes.
func (e *Encoder) Opaque(b []byte, maxLen int) error {
	if len(b) > maxLen {
		return fmt.Errorf("%w: %d > %d bytes", ErrLengthExceeded, len(b), maxLen)
	}
	return e.write(e.enc.EncodeOpaque(b))
}

// String writes a UTF-8 string of at most maxLen bytes.
func (e *Encoder) String(s string, maxLen int) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if len(s) > maxLen {
		return fmt.Errorf("%w: %d > %d bytes", ErrLengthExceeded, len(s), maxLen)
	}
	return e.write(e.enc.EncodeString(s))
}

// ArrayLen writes the element count of a variable-length array.
func (e *Encoder) ArrayLen(n, maxLen int) error {
	if n > maxLen {
		return fmt.Errorf("%w: %d > %d elements", ErrLengthExceeded, n, maxLen)
	}
	return e.write(e.enc.EncodeUint(uint32(n)))
}

// Encode writes a nested value.
func (e *Encoder) Encode(m Marshaler) error {
	return m.EncodeXDR(e)
}

func (e *Encoder) keep(_ int, err error) {
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("xdr: write: %w", err)
	}
}

func (e *Encoder) write(_ int, err error) error {
	e.keep(0, err)
	return e.err
}

func padLen(n int) int {
	return (4 - n%4) % 4
}
