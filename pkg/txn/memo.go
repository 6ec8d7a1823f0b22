package txn

import (
	"fmt"
	"unicode/utf8"

	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// MemoType is the wire discriminant of a memo.
type MemoType int32

const (
	MemoTypeNone MemoType = iota
	MemoTypeText
	MemoTypeID
	MemoTypeHash
	MemoTypeReturn
)

// MaxMemoText is the byte limit of a text memo.
const MaxMemoText = 28

// Memo is an optional note attached to a transaction. The zero value is the
// empty memo. Memos compare with ==.
type Memo struct {
	kind MemoType
	text string
	id   uint64
	hash [32]byte
}

// NoMemo returns the empty memo.
func NoMemo() Memo {
	return Memo{}
}

// TextMemo returns a text memo of at most MaxMemoText bytes of UTF-8.
func TextMemo(text string) (Memo, error) {
	if !utf8.ValidString(text) {
		return Memo{}, fmt.Errorf("%w: text is not valid utf-8", ErrInvalidMemo)
	}
	if len(text) > MaxMemoText {
		return Memo{}, fmt.Errorf("%w: text is %d bytes, max %d", ErrInvalidMemo, len(text), MaxMemoText)
	}
	return Memo{kind: MemoTypeText, text: text}, nil
}

// IDMemo returns a numeric memo.
func IDMemo(id uint64) Memo {
	return Memo{kind: MemoTypeID, id: id}
}

// HashMemo returns a memo carrying a 32-byte hash.
func HashMemo(hash [32]byte) Memo {
	return Memo{kind: MemoTypeHash, hash: hash}
}

// ReturnMemo returns a memo carrying the hash of a transaction being refunded.
func ReturnMemo(hash [32]byte) Memo {
	return Memo{kind: MemoTypeReturn, hash: hash}
}

// Type returns the wire arm of the memo.
func (m Memo) Type() MemoType { return m.kind }

// Text returns the payload of a text memo.
func (m Memo) Text() (string, bool) { return m.text, m.kind == MemoTypeText }

// ID returns the payload of an id memo.
func (m Memo) ID() (uint64, bool) { return m.id, m.kind == MemoTypeID }

// Hash returns the payload of hash and return memos.
func (m Memo) Hash() ([32]byte, bool) {
	return m.hash, m.kind == MemoTypeHash || m.kind == MemoTypeReturn
}

func (m Memo) String() string {
	switch m.kind {
	case MemoTypeNone:
		return "none"
	case MemoTypeText:
		return fmt.Sprintf("text:%q", m.text)
	case MemoTypeID:
		return fmt.Sprintf("id:%d", m.id)
	case MemoTypeHash:
		return fmt.Sprintf("hash:%x", m.hash)
	case MemoTypeReturn:
		return fmt.Sprintf("return:%x", m.hash)
	default:
		return fmt.Sprintf("unknown(%d)", m.kind)
	}
}

// MarshalText renders the memo as String does.
func (m Memo) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// EncodeXDR writes the memo union.
func (m Memo) EncodeXDR(e *xdr.Encoder) error {
	switch m.kind {
	case MemoTypeNone:
		e.Int32(int32(m.kind))
	case MemoTypeText:
		e.Int32(int32(m.kind))
		if err := e.String(m.text, MaxMemoText); err != nil {
			return fmt.Errorf("memo text: %w", err)
		}
	case MemoTypeID:
		e.Int32(int32(m.kind))
		e.Uint64(m.id)
	case MemoTypeHash, MemoTypeReturn:
		e.Int32(int32(m.kind))
		if err := e.FixedOpaque(m.hash[:], len(m.hash)); err != nil {
			return fmt.Errorf("memo hash: %w", err)
		}
	default:
		return fmt.Errorf("memo type: %w: %d", xdr.ErrUnknownDiscriminant, m.kind)
	}
	return nil
}

// DecodeXDR reads the memo union.
func (m *Memo) DecodeXDR(d *xdr.Decoder) error {
	kind, err := d.Int32()
	if err != nil {
		return fmt.Errorf("memo type: %w", err)
	}
	switch MemoType(kind) {
	case MemoTypeNone:
		*m = NoMemo()
	case MemoTypeText:
		text, err := d.String(MaxMemoText)
		if err != nil {
			return fmt.Errorf("memo text: %w", err)
		}
		*m = Memo{kind: MemoTypeText, text: text}
	case MemoTypeID:
		id, err := d.Uint64()
		if err != nil {
			return fmt.Errorf("memo id: %w", err)
		}
		*m = IDMemo(id)
	case MemoTypeHash, MemoTypeReturn:
		var hash [32]byte
		if err := d.FixedOpaque(hash[:]); err != nil {
			return fmt.Errorf("memo hash: %w", err)
		}
		*m = Memo{kind: MemoType(kind), hash: hash}
	default:
		return fmt.Errorf("memo type: %w: %d", xdr.ErrUnknownDiscriminant, kind)
	}
	return nil
}
