// Package xdr implements the canonical External Data Representation rules
// used on the wire by the ledger network: big-endian fixed-width integers,
// four-byte aligned opaque data, length-prefixed strings, optionals and
// discriminated unions.
//
// Domain types take part in the codec by implementing Marshaler and
// Unmarshaler. Marshal and Unmarshal are the raw-bytes entry points and
// MarshalBase64 and UnmarshalBase64 the textual ones. Decoding is strict: the
// input must be consumed exactly, padding must be zero, booleans must be 0 or
// 1 and every variable-length value is bounded by its declared maximum.
package xdr
