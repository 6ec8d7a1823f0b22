// Package strkey implements the checksummed, human-readable key encoding used
// for account ids ("G...") and secret seeds ("S...").
package strkey

import (
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/snksoft/crc"
)

// VersionByte discriminates the kind of key carried by an encoded string.
type VersionByte byte

const (
	// VersionByteAccountID renders as a leading "G".
	VersionByteAccountID VersionByte = 6 << 3
	// VersionByteSeed renders as a leading "S".
	VersionByteSeed VersionByte = 18 << 3
)

// PayloadLen is the size of every key payload.
const PayloadLen = 32

const checksumLen = 2

var (
	ErrInvalidEncoding    = errors.New("strkey: invalid base32 encoding")
	ErrInvalidLength      = errors.New("strkey: invalid length")
	ErrInvalidChecksum    = errors.New("strkey: invalid checksum")
	ErrInvalidVersionByte = errors.New("strkey: invalid version byte")
)

var (
	encoding = base32.StdEncoding.WithPadding(base32.NoPadding)
	xmodem   = crc.NewTable(crc.XMODEM)
)

// Encode renders payload under the given version byte.
func Encode(version VersionByte, payload []byte) (string, error) {
	if len(payload) != PayloadLen {
		return "", fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidLength, len(payload), PayloadLen)
	}
	if !version.known() {
		return "", fmt.Errorf("%w: 0x%02x", ErrInvalidVersionByte, byte(version))
	}

	raw := make([]byte, 0, 1+len(payload)+checksumLen)
	raw = append(raw, byte(version))
	raw = append(raw, payload...)
	raw = binary.LittleEndian.AppendUint16(raw, checksum(raw))

	return encoding.EncodeToString(raw), nil
}

// Decode parses s and returns its payload, provided s carries the expected
// version byte and a valid checksum.
func Decode(expected VersionByte, s string) ([]byte, error) {
	version, payload, err := decode(s)
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", ErrInvalidVersionByte, byte(version), byte(expected))
	}
	if len(payload) != PayloadLen {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidLength, len(payload), PayloadLen)
	}
	return payload, nil
}

// Version returns the version byte of a well-formed string without checking
// it against a particular key kind.
func Version(s string) (VersionByte, error) {
	version, _, err := decode(s)
	if err != nil {
		return 0, err
	}
	if !version.known() {
		return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidVersionByte, byte(version))
	}
	return version, nil
}

// IsValid reports whether s decodes under the expected version byte.
func IsValid(expected VersionByte, s string) bool {
	_, err := Decode(expected, s)
	return err == nil
}

func decode(s string) (VersionByte, []byte, error) {
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(raw) < 1+checksumLen {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(raw))
	}

	body, sum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	if binary.LittleEndian.Uint16(sum) != checksum(body) {
		return 0, nil, ErrInvalidChecksum
	}
	return VersionByte(body[0]), body[1:], nil
}

func checksum(data []byte) uint16 {
	return uint16(xmodem.CalculateCRC(data))
}

func (v VersionByte) known() bool {
	return v == VersionByteAccountID || v == VersionByteSeed
}

func (v VersionByte) String() string {
	switch v {
	case VersionByteAccountID:
		return "account_id"
	case VersionByteSeed:
		return "seed"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(v))
	}
}
