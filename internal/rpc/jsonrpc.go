// Package rpc implements the JSON-RPC 2.0 tool facade. It exposes the
// refinance engines as callable tools over a single POST endpoint, following
// the Model Context Protocol method set (initialize, tools/list, tools/call).
package rpc

import "encoding/json"

// Version is the only protocol version accepted in requests.
const Version = "2.0"

// ProtocolVersion identifies the tool protocol revision reported by
// initialize.
const ProtocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an incoming JSON-RPC 2.0 request. The ID is kept raw so that
// string, number, and null IDs round-trip unchanged.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// Response is an outgoing JSON-RPC 2.0 response. Exactly one of Result and
// Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func resultResponse(id json.RawMessage, result interface{}) Response {
	return Response{JSONRPC: Version, Result: result, ID: normalizeID(id)}
}

func errorResponse(id json.RawMessage, code int, message string) Response {
	return Response{
		JSONRPC: Version,
		Error:   &Error{Code: code, Message: message},
		ID:      normalizeID(id),
	}
}

// normalizeID substitutes an explicit null for a missing ID so the id field
// is always present in responses.
func normalizeID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}
