package transport

import (
	"github.com/goodnatureofminers/stellar-txcore/pkg/amount"
	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/txn"
)

// EnvelopeView is the JSON rendering of a decoded envelope.
type EnvelopeView struct {
	Hash       string          `json:"hash,omitempty"`
	Network    string          `json:"network"`
	Source     string          `json:"source"`
	Fee        amount.Stroops  `json:"fee"`
	Sequence   uint64          `json:"sequence"`
	TimeBounds *TimeBoundsView `json:"time_bounds,omitempty"`
	Memo       txn.Memo        `json:"memo"`
	Operations []OperationView `json:"operations"`
	Signatures []SignatureView `json:"signatures"`
}

type TimeBoundsView struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper"`
}

type OperationView struct {
	Type   string             `json:"type"`
	Source *keypair.PublicKey `json:"source,omitempty"`
	Body   txn.OperationBody  `json:"body"`
}

type SignatureView struct {
	Hint      string `json:"hint"`
	Signature []byte `json:"signature"`
}

// NewEnvelopeView renders st. Hash is left empty for unbound envelopes.
func NewEnvelopeView(st *txn.SignedTransaction, networkName string) EnvelopeView {
	tx := st.Transaction()
	view := EnvelopeView{
		Network:    networkName,
		Source:     tx.Source.Address(),
		Fee:        tx.Fee,
		Sequence:   tx.Sequence,
		Memo:       tx.Memo,
		Operations: make([]OperationView, 0, len(tx.Operations)),
		Signatures: make([]SignatureView, 0, len(st.Signatures())),
	}
	if hash, err := st.Hash(); err == nil {
		view.Hash = hash.Hex()
	}
	if tx.TimeBounds != nil {
		view.TimeBounds = &TimeBoundsView{Lower: tx.TimeBounds.Lower(), Upper: tx.TimeBounds.Upper()}
	}
	for _, op := range tx.Operations {
		view.Operations = append(view.Operations, OperationView{
			Type:   op.Body.Type().String(),
			Source: op.Source,
			Body:   op.Body,
		})
	}
	for _, sig := range st.Signatures() {
		view.Signatures = append(view.Signatures, SignatureView{Hint: sig.Hint.String(), Signature: sig.Signature})
	}
	return view
}
