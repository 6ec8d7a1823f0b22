package xdr

import "errors"

var (
	ErrShortBuffer         = errors.New("xdr: unexpected end of input")
	ErrTrailingBytes       = errors.New("xdr: trailing bytes after value")
	ErrInvalidPadding      = errors.New("xdr: non-zero padding")
	ErrInvalidBool         = errors.New("xdr: boolean is neither 0 nor 1")
	ErrLengthExceeded      = errors.New("xdr: length exceeds maximum")
	ErrInvalidUTF8         = errors.New("xdr: string is not valid UTF-8")
	ErrUnknownDiscriminant = errors.New("xdr: unknown union discriminant")
	ErrInvalidBase64       = errors.New("xdr: invalid base64")
	ErrFixedLengthMismatch = errors.New("xdr: fixed-length opaque has wrong size")
)
