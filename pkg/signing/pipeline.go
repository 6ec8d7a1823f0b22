// Package signing runs the signing pipeline for one network: hash the
// transaction, collect signatures and produce the transport envelope.
package signing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/network"
	"github.com/goodnatureofminers/stellar-txcore/pkg/txn"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

const (
	OperationHash   = "hash"
	OperationSign   = "sign"
	OperationCosign = "cosign"
	OperationDecode = "decode"
	OperationEncode = "encode"
	OperationVerify = "verify"
)

// ErrNoSigners is returned when Sign is called without a signer.
var ErrNoSigners = errors.New("signing: at least one signer is required")

// Pipeline signs transactions for a single network.
type Pipeline struct {
	logger  *zap.Logger
	network network.Network
	metrics Metrics
}

// NewPipeline builds a Pipeline scoped to net.
func NewPipeline(net network.Network, metrics Metrics, logger *zap.Logger) (*Pipeline, error) {
	if net.Passphrase() == "" {
		return nil, fmt.Errorf("%w: empty passphrase", network.ErrUnknownNetwork)
	}
	if metrics == nil {
		return nil, errors.New("signing metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		logger:  logger.Named("signing").With(zap.String("network", net.Name())),
		network: net,
		metrics: metrics,
	}, nil
}

// Network returns the network the pipeline signs for.
func (p *Pipeline) Network() network.Network {
	return p.network
}

// Hash returns the transaction hash on the pipeline's network.
func (p *Pipeline) Hash(tx txn.Transaction) (hash txn.Hash, err error) {
	defer p.observe(OperationHash, time.Now(), &err)
	return tx.Hash(p.network.ID())
}

// Sign hashes tx once and signs it with every signer in order.
func (p *Pipeline) Sign(ctx context.Context, tx txn.Transaction, signers ...Signer) (st *txn.SignedTransaction, err error) {
	defer p.observe(OperationSign, time.Now(), &err)
	if len(signers) == 0 {
		return nil, ErrNoSigners
	}

	st, err = txn.NewSignedTransaction(tx, p.network.ID())
	if err != nil {
		p.logger.Warn("hash transaction failed", zap.Error(err))
		return nil, err
	}
	if err := p.append(ctx, st, signers); err != nil {
		return nil, err
	}
	return st, nil
}

// Cosign adds signatures to an existing envelope. An unbound envelope is
// bound to the pipeline's network first.
func (p *Pipeline) Cosign(ctx context.Context, st *txn.SignedTransaction, signers ...Signer) (err error) {
	defer p.observe(OperationCosign, time.Now(), &err)
	if err := st.BindNetwork(p.network.ID()); err != nil {
		return err
	}
	return p.append(ctx, st, signers)
}

// Decode parses a Base64 envelope and binds it to the pipeline's network.
func (p *Pipeline) Decode(envelope string) (st *txn.SignedTransaction, err error) {
	defer p.observe(OperationDecode, time.Now(), &err)
	st, err = txn.DecodeEnvelope(envelope, p.network.ID())
	if err != nil {
		p.logger.Debug("decode envelope failed", zap.Error(err))
		return nil, err
	}
	return st, nil
}

// Encode renders the envelope as Base64.
func (p *Pipeline) Encode(st *txn.SignedTransaction) (envelope string, err error) {
	defer p.observe(OperationEncode, time.Now(), &err)
	return xdr.MarshalBase64(st)
}

// Verify checks that pk signed the envelope.
func (p *Pipeline) Verify(st *txn.SignedTransaction, pk keypair.PublicKey) (err error) {
	defer p.observe(OperationVerify, time.Now(), &err)
	if err := st.BindNetwork(p.network.ID()); err != nil {
		return err
	}
	return st.Verify(pk)
}

func (p *Pipeline) append(ctx context.Context, st *txn.SignedTransaction, signers []Signer) error {
	hash, err := st.Hash()
	if err != nil {
		return err
	}
	logger := p.logger.With(zap.String("tx_hash", hash.Hex()))

	for _, signer := range signers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := st.Sign(signer); err != nil {
			logger.Warn("sign failed", zap.String("signer", signer.PublicKey().Address()), zap.Error(err))
			return err
		}
	}

	count := len(st.Signatures())
	p.metrics.ObserveSignatures(count)
	logger.Debug("transaction signed", zap.Int("signatures", count))
	return nil
}

func (p *Pipeline) observe(operation string, started time.Time, err *error) {
	p.metrics.Observe(operation, *err, started)
}
