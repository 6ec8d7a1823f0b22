package txn

import "errors"

var (
	ErrInvalidAssetCode     = errors.New("txn: invalid asset code")
	ErrInvalidMemo          = errors.New("txn: invalid memo")
	ErrInvalidTimeBounds    = errors.New("txn: invalid time bounds")
	ErrUnsupportedOperation = errors.New("txn: unsupported operation")
	ErrInvalidFee           = errors.New("txn: fee does not fit uint32")
	ErrNoOperations         = errors.New("txn: transaction has no operations")
	ErrTooManyOperations    = errors.New("txn: too many operations")
	ErrTooManySignatures    = errors.New("txn: too many signatures")
	ErrInvalidSignature     = errors.New("txn: invalid signature")
	ErrSignatureNotFound    = errors.New("txn: no matching signature")
	ErrNetworkRequired      = errors.New("txn: envelope is not bound to a network")
	ErrNetworkMismatch      = errors.New("txn: envelope is bound to another network")
	ErrSigning              = errors.New("txn: signing failed")
	ErrSequenceOverflow     = errors.New("txn: sequence number overflow")
)
