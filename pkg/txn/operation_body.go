package txn

import (
	"fmt"

	"github.com/goodnatureofminers/stellar-txcore/pkg/amount"
	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

const (
	// MaxPathLength bounds the intermediate assets of a path payment.
	MaxPathLength = 5
	// MaxDataNameLength and MaxDataValueLength bound a ManageData entry.
	MaxDataNameLength  = 64
	MaxDataValueLength = 64
)

// minAssetSize is the wire size of the smallest asset, the native one.
const minAssetSize = 4

// CreateAccount funds a new account.
type CreateAccount struct {
	Destination     keypair.PublicKey
	StartingBalance amount.Amount
}

// Payment sends an amount of one asset.
type Payment struct {
	Destination keypair.PublicKey
	Asset       Asset
	Amount      amount.Amount
}

// PathPayment sends one asset and delivers another through up to
// MaxPathLength intermediate assets.
type PathPayment struct {
	SendAsset   Asset
	SendMax     amount.Amount
	Destination keypair.PublicKey
	DestAsset   Asset
	DestAmount  amount.Amount
	Path        []Asset
}

// ManageOffer creates, updates or deletes an offer. OfferID 0 creates one.
type ManageOffer struct {
	Selling Asset
	Buying  Asset
	Amount  amount.Amount
	Price   amount.Price
	OfferID uint64
}

// CreatePassiveOffer creates an offer that does not take offers at its price.
type CreatePassiveOffer struct {
	Selling Asset
	Buying  Asset
	Amount  amount.Amount
	Price   amount.Price
}

// Inflation runs the inflation process. It has no payload.
type Inflation struct{}

// ManageData sets or deletes a data entry. A nil Value deletes Name.
type ManageData struct {
	Name  string
	Value []byte
}

// SetOptions, ChangeTrust, AllowTrust and AccountMerge are part of the wire
// union but are not modelled. Encoding or decoding them fails with
// ErrUnsupportedOperation.
type (
	SetOptions   struct{}
	ChangeTrust  struct{}
	AllowTrust   struct{}
	AccountMerge struct{}
)

func (CreateAccount) Type() OperationType      { return OperationTypeCreateAccount }
func (Payment) Type() OperationType            { return OperationTypePayment }
func (PathPayment) Type() OperationType        { return OperationTypePathPayment }
func (ManageOffer) Type() OperationType        { return OperationTypeManageOffer }
func (CreatePassiveOffer) Type() OperationType { return OperationTypeCreatePassiveOffer }
func (SetOptions) Type() OperationType         { return OperationTypeSetOptions }
func (ChangeTrust) Type() OperationType        { return OperationTypeChangeTrust }
func (AllowTrust) Type() OperationType         { return OperationTypeAllowTrust }
func (AccountMerge) Type() OperationType       { return OperationTypeAccountMerge }
func (Inflation) Type() OperationType          { return OperationTypeInflation }
func (ManageData) Type() OperationType         { return OperationTypeManageData }

func (CreateAccount) isOperationBody()      {}
func (Payment) isOperationBody()            {}
func (PathPayment) isOperationBody()        {}
func (ManageOffer) isOperationBody()        {}
func (CreatePassiveOffer) isOperationBody() {}
func (SetOptions) isOperationBody()         {}
func (ChangeTrust) isOperationBody()        {}
func (AllowTrust) isOperationBody()         {}
func (AccountMerge) isOperationBody()       {}
func (Inflation) isOperationBody()          {}
func (ManageData) isOperationBody()         {}

func (b CreateAccount) EncodeXDR(e *xdr.Encoder) error {
	if err := e.Encode(b.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	return encodeAmount(e, "starting balance", b.StartingBalance)
}

func (b *CreateAccount) DecodeXDR(d *xdr.Decoder) error {
	if err := d.Decode(&b.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	return decodeAmount(d, "starting balance", &b.StartingBalance)
}

func (b Payment) EncodeXDR(e *xdr.Encoder) error {
	if err := e.Encode(b.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if err := e.Encode(b.Asset); err != nil {
		return fmt.Errorf("asset: %w", err)
	}
	return encodeAmount(e, "amount", b.Amount)
}

func (b *Payment) DecodeXDR(d *xdr.Decoder) error {
	if err := d.Decode(&b.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if err := d.Decode(&b.Asset); err != nil {
		return fmt.Errorf("asset: %w", err)
	}
	return decodeAmount(d, "amount", &b.Amount)
}

func (b PathPayment) EncodeXDR(e *xdr.Encoder) error {
	if err := e.Encode(b.SendAsset); err != nil {
		return fmt.Errorf("send asset: %w", err)
	}
	if err := encodeAmount(e, "send max", b.SendMax); err != nil {
		return err
	}
	if err := e.Encode(b.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if err := e.Encode(b.DestAsset); err != nil {
		return fmt.Errorf("dest asset: %w", err)
	}
	if err := encodeAmount(e, "dest amount", b.DestAmount); err != nil {
		return err
	}
	if err := e.ArrayLen(len(b.Path), MaxPathLength); err != nil {
		return fmt.Errorf("path: %w", err)
	}
	for i, asset := range b.Path {
		if err := e.Encode(asset); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
	}
	return nil
}

func (b *PathPayment) DecodeXDR(d *xdr.Decoder) error {
	if err := d.Decode(&b.SendAsset); err != nil {
		return fmt.Errorf("send asset: %w", err)
	}
	if err := decodeAmount(d, "send max", &b.SendMax); err != nil {
		return err
	}
	if err := d.Decode(&b.Destination); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if err := d.Decode(&b.DestAsset); err != nil {
		return fmt.Errorf("dest asset: %w", err)
	}
	if err := decodeAmount(d, "dest amount", &b.DestAmount); err != nil {
		return err
	}
	n, err := d.ArrayLen(MaxPathLength, minAssetSize)
	if err != nil {
		return fmt.Errorf("path: %w", err)
	}
	b.Path = nil
	if n > 0 {
		b.Path = make([]Asset, n)
	}
	for i := range b.Path {
		if err := d.Decode(&b.Path[i]); err != nil {
			return fmt.Errorf("path %d: %w", i, err)
		}
	}
	return nil
}

func (b ManageOffer) EncodeXDR(e *xdr.Encoder) error {
	if err := encodeOffer(e, b.Selling, b.Buying, b.Amount, b.Price); err != nil {
		return err
	}
	e.Uint64(b.OfferID)
	return nil
}

func (b *ManageOffer) DecodeXDR(d *xdr.Decoder) error {
	if err := decodeOffer(d, &b.Selling, &b.Buying, &b.Amount, &b.Price); err != nil {
		return err
	}
	id, err := d.Uint64()
	if err != nil {
		return fmt.Errorf("offer id: %w", err)
	}
	b.OfferID = id
	return nil
}

func (b CreatePassiveOffer) EncodeXDR(e *xdr.Encoder) error {
	return encodeOffer(e, b.Selling, b.Buying, b.Amount, b.Price)
}

func (b *CreatePassiveOffer) DecodeXDR(d *xdr.Decoder) error {
	return decodeOffer(d, &b.Selling, &b.Buying, &b.Amount, &b.Price)
}

func (Inflation) EncodeXDR(*xdr.Encoder) error { return nil }

func (b ManageData) EncodeXDR(e *xdr.Encoder) error {
	if err := e.String(b.Name, MaxDataNameLength); err != nil {
		return fmt.Errorf("data name: %w", err)
	}
	e.Bool(b.Value != nil)
	if b.Value != nil {
		if err := e.Opaque(b.Value, MaxDataValueLength); err != nil {
			return fmt.Errorf("data value: %w", err)
		}
	}
	return nil
}

func (b *ManageData) DecodeXDR(d *xdr.Decoder) error {
	name, err := d.String(MaxDataNameLength)
	if err != nil {
		return fmt.Errorf("data name: %w", err)
	}
	present, err := d.Bool()
	if err != nil {
		return fmt.Errorf("data value: %w", err)
	}
	var value []byte
	if present {
		if value, err = d.Opaque(MaxDataValueLength); err != nil {
			return fmt.Errorf("data value: %w", err)
		}
	}
	*b = ManageData{Name: name, Value: value}
	return nil
}

func (b SetOptions) EncodeXDR(*xdr.Encoder) error   { return unsupported(b) }
func (b ChangeTrust) EncodeXDR(*xdr.Encoder) error  { return unsupported(b) }
func (b AllowTrust) EncodeXDR(*xdr.Encoder) error   { return unsupported(b) }
func (b AccountMerge) EncodeXDR(*xdr.Encoder) error { return unsupported(b) }

func unsupported(b OperationBody) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, b.Type())
}

func encodeOffer(e *xdr.Encoder, selling, buying Asset, amt amount.Amount, price amount.Price) error {
	if err := e.Encode(selling); err != nil {
		return fmt.Errorf("selling: %w", err)
	}
	if err := e.Encode(buying); err != nil {
		return fmt.Errorf("buying: %w", err)
	}
	if err := encodeAmount(e, "amount", amt); err != nil {
		return err
	}
	return e.Encode(price)
}

func decodeOffer(d *xdr.Decoder, selling, buying *Asset, amt *amount.Amount, price *amount.Price) error {
	if err := d.Decode(selling); err != nil {
		return fmt.Errorf("selling: %w", err)
	}
	if err := d.Decode(buying); err != nil {
		return fmt.Errorf("buying: %w", err)
	}
	if err := decodeAmount(d, "amount", amt); err != nil {
		return err
	}
	return d.Decode(price)
}

func encodeAmount(e *xdr.Encoder, field string, a amount.Amount) error {
	stroops, err := a.Stroops()
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return e.Encode(stroops)
}

func decodeAmount(d *xdr.Decoder, field string, a *amount.Amount) error {
	var stroops amount.Stroops
	if err := d.Decode(&stroops); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*a = amount.FromStroops(stroops)
	return nil
}
