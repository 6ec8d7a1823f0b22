package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/stellar-txcore/pkg/network"
	"github.com/goodnatureofminers/stellar-txcore/pkg/signing"
	"github.com/goodnatureofminers/stellar-txcore/pkg/txn"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Pipeline interface {
		Network() network.Network
		Hash(tx txn.Transaction) (txn.Hash, error)
		Sign(ctx context.Context, tx txn.Transaction, signers ...signing.Signer) (*txn.SignedTransaction, error)
		Cosign(ctx context.Context, st *txn.SignedTransaction, signers ...signing.Signer) error
		Decode(envelope string) (*txn.SignedTransaction, error)
		Encode(st *txn.SignedTransaction) (string, error)
	}
	HTTPMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
