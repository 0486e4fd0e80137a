package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/shouldirefi/refi-advisor/internal/cache"
	"github.com/shouldirefi/refi-advisor/internal/engine"
	"github.com/shouldirefi/refi-advisor/pkg/mathutil"
	"go.uber.org/zap"
)

// Handler serves the tool endpoint. POST carries JSON-RPC 2.0 traffic; GET
// returns a service descriptor for discovery.
type Handler struct {
	logger  *zap.Logger
	cache   cache.Cache
	name    string
	version string
	baseURL string
}

// NewHandler constructs the tool endpoint handler. A nil cache disables
// response caching.
func NewHandler(logger *zap.Logger, c cache.Cache, name, version, baseURL string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger, cache: c, name: name, version: version, baseURL: baseURL}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleDescriptor(w)
	case http.MethodPost:
		h.handleRPC(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// handleDescriptor serves a human-readable summary of the endpoint.
func (h *Handler) handleDescriptor(w http.ResponseWriter) {
	type toolSummary struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	tools := Tools()
	summaries := make([]toolSummary, 0, len(tools))
	for _, t := range tools {
		summaries = append(summaries, toolSummary{Name: t.Name, Description: t.Description})
	}

	h.writeJSON(w, map[string]interface{}{
		"name":          h.name,
		"version":       h.version,
		"description":   "Tool server for refinance decision calculations",
		"endpoint":      "/api/mcp",
		"protocol":      "JSON-RPC 2.0",
		"tools":         summaries,
		"documentation": h.baseURL + "/docs/mcp",
		"manifest":      h.baseURL + "/mcp.json",
	})
}

// handleRPC dispatches one JSON-RPC request. Protocol-level failures are
// reported inside a JSON-RPC error object with HTTP status 200; only
// transport-level problems surface as non-200 statuses.
func (h *Handler) handleRPC(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, Response{
			JSONRPC: Version,
			Error:   &Error{Code: CodeParseError, Message: "Parse error", Data: err.Error()},
			ID:      json.RawMessage("null"),
		})
		return
	}

	if req.JSONRPC != Version {
		h.writeJSON(w, errorResponse(req.ID, CodeInvalidRequest, "Invalid Request: jsonrpc must be '2.0'"))
		return
	}

	switch req.Method {
	case "initialize":
		h.writeJSON(w, resultResponse(req.ID, map[string]interface{}{
			"protocolVersion": ProtocolVersion,
			"capabilities":    map[string]interface{}{"tools": map[string]interface{}{}},
			"serverInfo": map[string]string{
				"name":    h.name,
				"version": h.version,
			},
		}))
	case "tools/list":
		h.writeJSON(w, resultResponse(req.ID, map[string]interface{}{"tools": Tools()}))
	case "tools/call":
		h.writeJSON(w, h.handleToolCall(req))
	default:
		h.writeJSON(w, errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method)))
	}
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (h *Handler) handleToolCall(req Request) Response {
	var params callParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("Invalid params: %v", err))
		}
	}

	cacheKey := params.Name + ":" + string(params.Arguments)
	if h.cache != nil {
		if text, ok := h.cache.Get(cacheKey); ok {
			h.logger.Debug("tool response served from cache",
				zap.String("op", "rpc.handleToolCall"),
				zap.String("tool", params.Name),
			)
			return resultResponse(req.ID, toolContent(text))
		}
	}

	result, err := h.invoke(params.Name, params.Arguments)
	if err != nil {
		var notFound *unknownToolError
		if errors.As(err, &notFound) {
			return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Unknown tool: %s", params.Name))
		}
		var vErr *engine.ValidationError
		if errors.As(err, &vErr) {
			return errorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("Invalid params: %v", vErr))
		}
		h.logger.Error("tool invocation failed",
			zap.String("op", "rpc.handleToolCall"),
			zap.String("tool", params.Name),
			zap.Error(err),
		)
		return errorResponse(req.ID, CodeInternalError, "Internal error")
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errorResponse(req.ID, CodeInternalError, "Internal error")
	}

	if h.cache != nil {
		if err := h.cache.Set(cacheKey, string(text)); err != nil {
			h.logger.Warn("failed to cache tool response",
				zap.String("op", "rpc.handleToolCall"),
				zap.String("tool", params.Name),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("tool invoked",
		zap.String("op", "rpc.handleToolCall"),
		zap.String("tool", params.Name),
	)

	return resultResponse(req.ID, toolContent(string(text)))
}

type unknownToolError struct {
	name string
}

func (e *unknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.name)
}

// toolResult is the condensed view returned through the tool facade. Dollar
// savings are rounded to whole dollars and payments to cents; the full
// breakdown stays on the form API.
type toolResult struct {
	Decision              engine.Decision   `json:"decision"`
	Confidence            engine.Confidence `json:"confidence"`
	Reasons               []string          `json:"reasons"`
	Savings               float64           `json:"savings"`
	BreakEvenMonths       int               `json:"breakEvenMonths"`
	MonthlyPaymentChange  float64           `json:"monthlyPaymentChange"`
	CurrentMonthlyPayment float64           `json:"currentMonthlyPayment"`
	NewMonthlyPayment     float64           `json:"newMonthlyPayment"`
}

func (h *Handler) invoke(name string, args json.RawMessage) (toolResult, error) {
	switch name {
	case ToolRefinanceCar:
		var in engine.RefinanceInput
		if err := json.Unmarshal(args, &in); err != nil {
			return toolResult{}, &engine.ValidationError{Field: "arguments", Reason: err.Error()}
		}
		res, err := engine.CarRefinance(in)
		if err != nil {
			return toolResult{}, err
		}
		return condenseRefinance(res), nil
	case ToolRefinanceMortgage:
		var in engine.MortgageInput
		if err := json.Unmarshal(args, &in); err != nil {
			return toolResult{}, &engine.ValidationError{Field: "arguments", Reason: err.Error()}
		}
		res, err := engine.MortgageRefinance(in)
		if err != nil {
			return toolResult{}, err
		}
		return condenseRefinance(res.RefinanceResult), nil
	case ToolRefinancePersonalLoan:
		var in engine.RefinanceInput
		if err := json.Unmarshal(args, &in); err != nil {
			return toolResult{}, &engine.ValidationError{Field: "arguments", Reason: err.Error()}
		}
		res, err := engine.PersonalLoanRefinance(in)
		if err != nil {
			return toolResult{}, err
		}
		return condenseRefinance(res), nil
	case ToolBalanceTransfer:
		var in engine.BalanceTransferInput
		if err := json.Unmarshal(args, &in); err != nil {
			return toolResult{}, &engine.ValidationError{Field: "arguments", Reason: err.Error()}
		}
		res, err := engine.BalanceTransfer(in)
		if err != nil {
			return toolResult{}, err
		}
		return condenseTransfer(res), nil
	default:
		return toolResult{}, &unknownToolError{name: name}
	}
}

func condenseRefinance(res engine.RefinanceResult) toolResult {
	return toolResult{
		Decision:              res.Decision,
		Confidence:            res.Confidence,
		Reasons:               res.Reasons,
		Savings:               math.Round(res.NetSavings),
		BreakEvenMonths:       res.BreakEvenMonths,
		MonthlyPaymentChange:  mathutil.Round(res.MonthlyPaymentChange),
		CurrentMonthlyPayment: mathutil.Round(res.CurrentMonthlyPayment),
		NewMonthlyPayment:     mathutil.Round(res.NewMonthlyPayment),
	}
}

// condenseTransfer maps a balance transfer onto the shared tool shape. The
// payment does not change on a transfer, so both payment fields carry the
// same value and break-even is reported as zero.
func condenseTransfer(res engine.BalanceTransferResult) toolResult {
	return toolResult{
		Decision:              res.Decision,
		Confidence:            res.Confidence,
		Reasons:               res.Reasons,
		Savings:               math.Round(res.TotalSavings),
		BreakEvenMonths:       0,
		MonthlyPaymentChange:  0,
		CurrentMonthlyPayment: mathutil.Round(res.CurrentMonthlyPayment),
		NewMonthlyPayment:     mathutil.Round(res.CurrentMonthlyPayment),
	}
}

func toolContent(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]string{
			{"type": "text", "text": text},
		},
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
