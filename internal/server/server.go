// Package server exposes the refinance engines over HTTP: one JSON endpoint
// per loan product for form-driven clients, the JSON-RPC tool endpoint for
// programmatic callers, and a version endpoint for UI metadata.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shouldirefi/refi-advisor/internal/cache"
	"github.com/shouldirefi/refi-advisor/internal/engine"
	"github.com/shouldirefi/refi-advisor/internal/rpc"
	"go.uber.org/zap"
)

type handler struct {
	logger  *zap.Logger
	version string
}

// Options configures the HTTP handler.
type Options struct {
	Logger   *zap.Logger
	Cache    cache.Cache
	Limiter  *RateLimiter
	SiteName string
	Version  string
	BaseURL  string
}

// NewHandler constructs the HTTP handler serving the refinance API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{logger: logger, version: version}

	mux := http.NewServeMux()

	// Per-product decision endpoints (form API)
	mux.HandleFunc("/api/car", h.handleCar)
	mux.HandleFunc("/api/mortgage", h.handleMortgage)
	mux.HandleFunc("/api/personal-loan", h.handlePersonalLoan)
	mux.HandleFunc("/api/balance-transfer", h.handleBalanceTransfer)

	// JSON-RPC tool endpoint
	mux.Handle("/api/mcp", rpc.NewHandler(logger, opts.Cache, opts.SiteName, version, opts.BaseURL))

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	if opts.Limiter != nil {
		return RateLimitMiddleware(opts.Limiter, mux)
	}
	return mux
}

// refinanceResponse augments the engine result with the nullable boolean the
// form clients bind to directly.
type refinanceResponse struct {
	engine.RefinanceResult
	ShouldRefinance *bool `json:"shouldRefinance"`
}

type mortgageResponse struct {
	engine.MortgageRefinanceResult
	ShouldRefinance *bool `json:"shouldRefinance"`
}

type transferResponse struct {
	engine.BalanceTransferResult
	ShouldTransfer *bool `json:"shouldTransfer"`
}

func (h *handler) handleCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var in engine.RefinanceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleCar")
		return
	}

	result, err := engine.CarRefinance(in)
	if err != nil {
		h.respondEngineError(w, err, "server.handleCar")
		return
	}

	h.logDecision("server.handleCar", string(result.Decision), string(result.Confidence))
	h.writeJSON(w, http.StatusOK, refinanceResponse{
		RefinanceResult: result,
		ShouldRefinance: result.Decision.Bool(),
	})
}

func (h *handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var in engine.MortgageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleMortgage")
		return
	}

	result, err := engine.MortgageRefinance(in)
	if err != nil {
		h.respondEngineError(w, err, "server.handleMortgage")
		return
	}

	h.logDecision("server.handleMortgage", string(result.Decision), string(result.Confidence))
	h.writeJSON(w, http.StatusOK, mortgageResponse{
		MortgageRefinanceResult: result,
		ShouldRefinance:         result.Decision.Bool(),
	})
}

func (h *handler) handlePersonalLoan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var in engine.RefinanceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handlePersonalLoan")
		return
	}

	result, err := engine.PersonalLoanRefinance(in)
	if err != nil {
		h.respondEngineError(w, err, "server.handlePersonalLoan")
		return
	}

	h.logDecision("server.handlePersonalLoan", string(result.Decision), string(result.Confidence))
	h.writeJSON(w, http.StatusOK, refinanceResponse{
		RefinanceResult: result,
		ShouldRefinance: result.Decision.Bool(),
	})
}

func (h *handler) handleBalanceTransfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var in engine.BalanceTransferInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleBalanceTransfer")
		return
	}

	result, err := engine.BalanceTransfer(in)
	if err != nil {
		h.respondEngineError(w, err, "server.handleBalanceTransfer")
		return
	}

	h.logDecision("server.handleBalanceTransfer", string(result.Decision), string(result.Confidence))
	h.writeJSON(w, http.StatusOK, transferResponse{
		BalanceTransferResult: result,
		ShouldTransfer:        result.Decision.Bool(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) logDecision(op, decision, confidence string) {
	h.logger.Info("decision computed",
		zap.String("op", op),
		zap.String("decision", decision),
		zap.String("confidence", confidence),
	)
}

// respondEngineError maps validation failures to 400 and anything else to 500.
func (h *handler) respondEngineError(w http.ResponseWriter, err error, op string) {
	var vErr *engine.ValidationError
	if errors.As(err, &vErr) {
		h.respondError(w, http.StatusBadRequest, vErr.Error(), op)
		return
	}
	h.respondError(w, http.StatusInternalServerError, err.Error(), op)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
