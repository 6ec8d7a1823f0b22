package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/stellar-txcore/internal/transport"
	"github.com/goodnatureofminers/stellar-txcore/pkg/workerpool"
)

type decodeCommand struct {
	Workers int `long:"workers" env:"TXTOOL_DECODE_WORKERS" description:"concurrent decoders" default:"4"`
	Args    struct {
		Envelopes []string `positional-arg-name:"BASE64" description:"envelopes, one per line on stdin when omitted"`
	} `positional-args:"yes"`

	app *app
}

func (c *decodeCommand) Execute([]string) error {
	envelopes := c.Args.Envelopes
	if len(envelopes) == 0 {
		lines, err := readLines(c.app)
		if err != nil {
			return err
		}
		envelopes = lines
	}
	p, err := c.app.pipeline()
	if err != nil {
		return err
	}
	name := p.Network().Name()

	views, err := workerpool.Map(c.app.ctx, c.Workers, envelopes, func(_ context.Context, envelope string) (transport.EnvelopeView, error) {
		st, err := p.Decode(envelope)
		if err != nil {
			return transport.EnvelopeView{}, fmt.Errorf("envelope %.16q: %w", envelope, err)
		}
		return transport.NewEnvelopeView(st, name), nil
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.app.out)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func readLines(a *app) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(a.in)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read envelopes: %w", err)
	}
	return lines, nil
}
