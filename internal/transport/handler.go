// Package transport exposes the signing pipeline over a local HTTP API. It
// never submits anything to the network.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/stellar-txcore/pkg/signing"
	"github.com/goodnatureofminers/stellar-txcore/pkg/txn"
	"github.com/goodnatureofminers/stellar-txcore/pkg/xdr"
)

const maxBodyBytes = 64 << 10

var errNoSigners = errors.New("no signing key configured")

// Handler serves the /v1 API.
type Handler struct {
	pipeline Pipeline
	signers  []signing.Signer
	metrics  HTTPMetrics
	limiter  ratelimit.Limiter
	logger   *zap.Logger
}

// NewHandler builds a Handler. rps bounds the request rate; zero or less
// disables limiting.
func NewHandler(pipeline Pipeline, signers []signing.Signer, metrics HTTPMetrics, rps int, logger *zap.Logger) (*Handler, error) {
	if pipeline == nil {
		return nil, errors.New("transport pipeline is required")
	}
	if metrics == nil {
		return nil, errors.New("transport metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Handler{
		pipeline: pipeline,
		signers:  signers,
		metrics:  metrics,
		limiter:  limiter,
		logger:   logger.Named("http"),
	}, nil
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("GET /v1/health", h.route("/v1/health", h.health))
	mux.Handle("POST /v1/hash", h.route("/v1/hash", h.hash))
	mux.Handle("POST /v1/sign", h.route("/v1/sign", h.sign))
	mux.Handle("POST /v1/decode", h.route("/v1/decode", h.decode))
}

type (
	healthResponse struct {
		Status  string `json:"status"`
		Network string `json:"network"`
	}
	hashRequest struct {
		Transaction string `json:"transaction"`
	}
	hashResponse struct {
		Hash    string `json:"hash"`
		Network string `json:"network"`
	}
	signRequest struct {
		Transaction string `json:"transaction,omitempty"`
		Envelope    string `json:"envelope,omitempty"`
	}
	signResponse struct {
		Envelope   string `json:"envelope"`
		Hash       string `json:"hash"`
		Signatures int    `json:"signatures"`
	}
	decodeRequest struct {
		Envelope string `json:"envelope"`
	}
	errorResponse struct {
		Error string `json:"error"`
	}
)

func (h *Handler) health(_ http.ResponseWriter, _ *http.Request) (int, any) {
	return http.StatusOK, healthResponse{Status: "healthy", Network: h.pipeline.Network().Name()}
}

func (h *Handler) hash(w http.ResponseWriter, r *http.Request) (int, any) {
	var req hashRequest
	if err := readJSON(w, r, &req); err != nil {
		return http.StatusBadRequest, err
	}
	var tx txn.Transaction
	if err := xdr.UnmarshalBase64(req.Transaction, &tx); err != nil {
		return http.StatusBadRequest, fmt.Errorf("decode transaction: %w", err)
	}
	hash, err := h.pipeline.Hash(tx)
	if err != nil {
		return statusFor(err), err
	}
	return http.StatusOK, hashResponse{Hash: hash.Hex(), Network: h.pipeline.Network().Name()}
}

func (h *Handler) sign(w http.ResponseWriter, r *http.Request) (int, any) {
	if len(h.signers) == 0 {
		return http.StatusServiceUnavailable, errNoSigners
	}
	var req signRequest
	if err := readJSON(w, r, &req); err != nil {
		return http.StatusBadRequest, err
	}

	var st *txn.SignedTransaction
	switch {
	case req.Transaction != "" && req.Envelope != "":
		return http.StatusBadRequest, errors.New("set either transaction or envelope, not both")
	case req.Transaction != "":
		var tx txn.Transaction
		if err := xdr.UnmarshalBase64(req.Transaction, &tx); err != nil {
			return http.StatusBadRequest, fmt.Errorf("decode transaction: %w", err)
		}
		signed, err := h.pipeline.Sign(r.Context(), tx, h.signers...)
		if err != nil {
			return statusFor(err), err
		}
		st = signed
	case req.Envelope != "":
		decoded, err := h.pipeline.Decode(req.Envelope)
		if err != nil {
			return http.StatusBadRequest, err
		}
		if err := h.pipeline.Cosign(r.Context(), decoded, h.signers...); err != nil {
			return statusFor(err), err
		}
		st = decoded
	default:
		return http.StatusBadRequest, errors.New("transaction or envelope is required")
	}

	envelope, err := h.pipeline.Encode(st)
	if err != nil {
		return statusFor(err), err
	}
	hash, err := st.Hash()
	if err != nil {
		return statusFor(err), err
	}
	return http.StatusOK, signResponse{Envelope: envelope, Hash: hash.Hex(), Signatures: len(st.Signatures())}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (int, any) {
	var req decodeRequest
	if err := readJSON(w, r, &req); err != nil {
		return http.StatusBadRequest, err
	}
	st, err := h.pipeline.Decode(req.Envelope)
	if err != nil {
		return http.StatusBadRequest, err
	}
	return http.StatusOK, NewEnvelopeView(st, h.pipeline.Network().Name())
}

func (h *Handler) route(name string, fn func(http.ResponseWriter, *http.Request) (int, any)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.limiter.Take()
		started := time.Now()

		code, body := fn(w, r)
		if err, ok := body.(error); ok {
			level := h.logger.Debug
			if code >= http.StatusInternalServerError {
				level = h.logger.Error
			}
			level("request failed", zap.String("route", name), zap.Int("code", code), zap.Error(err))
			body = errorResponse{Error: err.Error()}
		}
		writeJSON(w, code, body, h.logger)
		h.metrics.ObserveRequest(name, code, started)
	})
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("write response failed", zap.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, txn.ErrUnsupportedOperation),
		errors.Is(err, txn.ErrInvalidFee),
		errors.Is(err, txn.ErrTooManyOperations),
		errors.Is(err, txn.ErrTooManySignatures),
		errors.Is(err, txn.ErrNetworkMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, xdr.ErrInvalidBase64),
		errors.Is(err, xdr.ErrShortBuffer),
		errors.Is(err, xdr.ErrTrailingBytes):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
