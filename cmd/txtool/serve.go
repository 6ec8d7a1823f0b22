package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/stellar-txcore/internal/metrics"
	"github.com/goodnatureofminers/stellar-txcore/internal/transport"
)

type serveCommand struct {
	Addr  string   `long:"addr" env:"TXTOOL_ADDR" description:"listen address" default:"127.0.0.1:8000"`
	RPS   int      `long:"rps" env:"TXTOOL_RPS" description:"request rate limit per second, 0 disables" default:"50"`
	Seeds []string `long:"seed" env:"TXTOOL_SEEDS" env-delim:"," description:"secret seed used by /v1/sign; repeat for several signers"`

	app *app
}

func (c *serveCommand) Execute([]string) error {
	logger := c.app.logger
	signers, err := parseSigners(c.Seeds)
	if err != nil {
		return err
	}
	p, err := c.app.pipeline()
	if err != nil {
		return err
	}
	h, err := transport.NewHandler(p, signers, metrics.NewHTTP(), c.RPS, logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	h.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              c.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-c.app.ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", c.Addr),
		zap.String("network", p.Network().Name()),
		zap.Int("signers", len(signers)),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
