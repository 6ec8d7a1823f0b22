package signing

import (
	"time"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Signer interface {
		PublicKey() keypair.PublicKey
		Sign(message []byte) ([]byte, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveSignatures(count int)
	}
)
