package txn

import (
	"fmt"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

// OperationType is the wire discriminant of an operation body.
type OperationType int32

const (
	OperationTypeCreateAccount OperationType = iota
	OperationTypePayment
	OperationTypePathPayment
	OperationTypeManageOffer
	OperationTypeCreatePassiveOffer
	OperationTypeSetOptions
	OperationTypeChangeTrust
	OperationTypeAllowTrust
	OperationTypeAccountMerge
	OperationTypeInflation
	OperationTypeManageData
)

var operationTypeNames = map[OperationType]string{
	OperationTypeCreateAccount:      "create_account",
	OperationTypePayment:            "payment",
	OperationTypePathPayment:        "path_payment",
	OperationTypeManageOffer:        "manage_offer",
	OperationTypeCreatePassiveOffer: "create_passive_offer",
	OperationTypeSetOptions:         "set_options",
	OperationTypeChangeTrust:        "change_trust",
	OperationTypeAllowTrust:         "allow_trust",
	OperationTypeAccountMerge:       "account_merge",
	OperationTypeInflation:          "inflation",
	OperationTypeManageData:         "manage_data",
}

func (t OperationType) String() string {
	if name, ok := operationTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int32(t))
}

// OperationBody is one of the operation variants declared in this package.
type OperationBody interface {
	xdr.Marshaler
	Type() OperationType
	isOperationBody()
}

// Operation is a single ledger action with an optional source account that
// overrides the transaction source.
type Operation struct {
	Source *keypair.PublicKey
	Body   OperationBody
}

// NewOperation wraps body without a source override.
func NewOperation(body OperationBody) Operation {
	return Operation{Body: body}
}

// WithSource returns a copy of o acting on behalf of source.
func (o Operation) WithSource(source keypair.PublicKey) Operation {
	o.Source = &source
	return o
}

// EncodeXDR writes the optional source, the body discriminant and the body.
func (o Operation) EncodeXDR(e *xdr.Encoder) error {
	if o.Body == nil {
		return fmt.Errorf("operation body: %w: missing", ErrUnsupportedOperation)
	}
	e.Bool(o.Source != nil)
	if o.Source != nil {
		if err := e.Encode(*o.Source); err != nil {
			return fmt.Errorf("operation source: %w", err)
		}
	}
	if !o.Body.Type().supported() {
		return fmt.Errorf("operation body: %w: %s", ErrUnsupportedOperation, o.Body.Type())
	}
	e.Int32(int32(o.Body.Type()))
	if err := e.Encode(o.Body); err != nil {
		return fmt.Errorf("operation body %s: %w", o.Body.Type(), err)
	}
	return nil
}

// DecodeXDR reads an operation. Variants this package cannot represent fail
// with ErrUnsupportedOperation.
func (o *Operation) DecodeXDR(d *xdr.Decoder) error {
	present, err := d.Bool()
	if err != nil {
		return fmt.Errorf("operation source: %w", err)
	}
	var source *keypair.PublicKey
	if present {
		source = new(keypair.PublicKey)
		if err := d.Decode(source); err != nil {
			return fmt.Errorf("operation source: %w", err)
		}
	}

	kind, err := d.Int32()
	if err != nil {
		return fmt.Errorf("operation type: %w", err)
	}
	body, err := decodeOperationBody(d, OperationType(kind))
	if err != nil {
		return err
	}
	*o = Operation{Source: source, Body: body}
	return nil
}

func decodeOperationBody(d *xdr.Decoder, kind OperationType) (OperationBody, error) {
	var body interface {
		OperationBody
		xdr.Unmarshaler
	}
	switch kind {
	case OperationTypeCreateAccount:
		body = &CreateAccount{}
	case OperationTypePayment:
		body = &Payment{}
	case OperationTypePathPayment:
		body = &PathPayment{}
	case OperationTypeManageOffer:
		body = &ManageOffer{}
	case OperationTypeCreatePassiveOffer:
		body = &CreatePassiveOffer{}
	case OperationTypeInflation:
		return Inflation{}, nil
	case OperationTypeManageData:
		body = &ManageData{}
	case OperationTypeSetOptions, OperationTypeChangeTrust, OperationTypeAllowTrust, OperationTypeAccountMerge:
		return nil, fmt.Errorf("operation body: %w: %s", ErrUnsupportedOperation, kind)
	default:
		return nil, fmt.Errorf("operation type: %w: %d", xdr.ErrUnknownDiscriminant, int32(kind))
	}
	if err := d.Decode(body); err != nil {
		return nil, fmt.Errorf("operation body %s: %w", kind, err)
	}
	return deref(body), nil
}

// deref turns the pointer used while decoding back into the value variant
// that callers construct and switch on.
func deref(body OperationBody) OperationBody {
	switch b := body.(type) {
	case *CreateAccount:
		return *b
	case *Payment:
		return *b
	case *PathPayment:
		return *b
	case *ManageOffer:
		return *b
	case *CreatePassiveOffer:
		return *b
	case *ManageData:
		return *b
	default:
		return body
	}
}

func (t OperationType) supported() bool {
	switch t {
	case OperationTypeSetOptions, OperationTypeChangeTrust, OperationTypeAllowTrust, OperationTypeAccountMerge:
		return false
	}
	_, ok := operationTypeNames[t]
	return ok
}
