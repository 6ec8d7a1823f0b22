package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/stellar-txcore/internal/metrics"
	"github.com/goodnatureofminers/stellar-txcore/pkg/keypair"
	"github.com/goodnatureofminers/stellar-txcore/pkg/network"
	"github.com/goodnatureofminers/stellar-txcore/pkg/signing"
)

type options struct {
	Network    string `long:"network" env:"TXTOOL_NETWORK" description:"network name (public, testnet)" default:"testnet"`
	Passphrase string `long:"passphrase" env:"TXTOOL_PASSPHRASE" description:"custom network passphrase, overrides --network"`
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	opts   options
	ctx    context.Context
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := keypair.Init(); err != nil {
		logger.Fatal("crypto self-test failed", zap.Error(err))
	}

	a := &app{ctx: ctx, logger: logger, in: os.Stdin, out: os.Stdout}
	if _, err := newParser(a).ParseArgs(os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("txtool failed", zap.Error(err))
	}
}

func newParser(a *app) *flags.Parser {
	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	commands := []struct {
		name, short string
		data        any
	}{
		{"keygen", "Generate key pairs", &keygenCommand{app: a}},
		{"network-id", "Print the network id", &networkIDCommand{app: a}},
		{"sign", "Sign a transaction or cosign an envelope", &signCommand{app: a}},
		{"decode", "Decode envelopes to JSON", &decodeCommand{app: a}},
		{"serve", "Serve the local signing API", &serveCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.data); err != nil {
			panic(err)
		}
	}
	return parser
}

func (a *app) network() (network.Network, error) {
	if a.opts.Passphrase != "" {
		return network.New(a.opts.Passphrase), nil
	}
	return network.ByName(a.opts.Network)
}

func (a *app) pipeline() (*signing.Pipeline, error) {
	net, err := a.network()
	if err != nil {
		return nil, err
	}
	return signing.NewPipeline(net, metrics.NewSigning(net.Name()), a.logger)
}

func parseSigners(seeds []string) ([]signing.Signer, error) {
	signers := make([]signing.Signer, 0, len(seeds))
	for i, seed := range seeds {
		kp, err := keypair.FromSecretSeed(strings.TrimSpace(seed))
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		signers = append(signers, kp)
	}
	return signers, nil
}

// readInput returns arg, or the whole of in with surrounding space removed
// when arg is empty.
func readInput(arg string, in io.Reader) (string, error) {
	if arg != "" {
		return arg, nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", errors.New("no input given")
	}
	return s, nil
}
