package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/stellar-txcore/pkg/txn"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

type signCommand struct {
	Seeds    []string `long:"seed" env:"TXTOOL_SEEDS" env-delim:"," description:"secret seed to sign with; repeat for several signers" required:"true"`
	Envelope bool     `long:"envelope" description:"input is an envelope to cosign rather than a bare transaction"`
	Args     struct {
		Input string `positional-arg-name:"BASE64" description:"input, read from stdin when omitted"`
	} `positional-args:"yes"`

	app *app
}

func (c *signCommand) Execute([]string) error {
	signers, err := parseSigners(c.Seeds)
	if err != nil {
		return err
	}
	input, err := readInput(c.Args.Input, c.app.in)
	if err != nil {
		return err
	}
	p, err := c.app.pipeline()
	if err != nil {
		return err
	}

	var st *txn.SignedTransaction
	if c.Envelope {
		if st, err = p.Decode(input); err != nil {
			return err
		}
		if err := p.Cosign(c.app.ctx, st, signers...); err != nil {
			return err
		}
	} else {
		var tx txn.Transaction
		if err := xdr.UnmarshalBase64(input, &tx); err != nil {
			return fmt.Errorf("decode transaction: %w", err)
		}
		if st, err = p.Sign(c.app.ctx, tx, signers...); err != nil {
			return err
		}
	}

	envelope, err := p.Encode(st)
	if err != nil {
		return err
	}
	hash, err := st.Hash()
	if err != nil {
		return err
	}
	c.app.logger.Info("signed",
		zap.String("tx_hash", hash.Hex()),
		zap.Int("signatures", len(st.Signatures())),
	)
	_, err = fmt.Fprintln(c.app.out, envelope)
	return err
}
