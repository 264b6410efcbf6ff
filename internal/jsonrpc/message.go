package jsonrpc

import (
	"errors"
	"fmt"
)

// ProtocolVersion is the fixed JSON-RPC version tag.
const ProtocolVersion = "2.0"

// Reserved JSON-RPC error codes.
const (
	ErrCodeParse          = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
)

// ErrInvalidRequest reports a JSON document that is not a well-formed
// request object.
var ErrInvalidRequest = errors.New("invalid request")

// Request is a single JSON-RPC 2.0 request or notification. A nil ID
// marks a notification; a non-nil ID may still be the null variant.
type Request struct {
	ID     *RequestID
	Method string
	Params Value
}

// IsNotification reports whether the request carries no ID and must
// never receive a response.
func (r *Request) IsNotification() bool { return r.ID == nil }

// RequestFromValue interprets a decoded Value as a Request. The Value
// must be an object with a non-empty string "method"; "id" and "params"
// are optional, and an explicit "id": null is distinct from an absent id.
func RequestFromValue(v Value) (*Request, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidRequest)
	}
	methodVal, ok := obj["method"]
	if !ok {
		return nil, fmt.Errorf("%w: missing method", ErrInvalidRequest)
	}
	method, ok := methodVal.AsString()
	if !ok || method == "" {
		return nil, fmt.Errorf("%w: method must be a non-empty string", ErrInvalidRequest)
	}

	req := &Request{Method: method}
	if idVal, ok := obj["id"]; ok {
		id, err := IDFromValue(idVal)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		req.ID = &id
	}
	if params, ok := obj["params"]; ok {
		req.Params = params
	}
	return req, nil
}

// Response is a single JSON-RPC 2.0 response. Exactly one of Result and
// Error is set by the constructors.
type Response struct {
	JSONRPC string       `json:"jsonrpc"`
	ID      RequestID    `json:"id"`
	Result  any          `json:"result,omitempty"`
	Error   *ErrorObject `json:"error,omitempty"`
}

// ErrorObject is a JSON-RPC 2.0 error object.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewResponse creates a successful response.
func NewResponse(id RequestID, result any) *Response {
	return &Response{JSONRPC: ProtocolVersion, ID: id, Result: result}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(id RequestID, code int, message string) *Response {
	return &Response{
		JSONRPC: ProtocolVersion,
		ID:      id,
		Error:   &ErrorObject{Code: code, Message: message},
	}
}

// NewErrorResponseData creates an error response carrying extra data.
func NewErrorResponseData(id RequestID, code int, message string, data any) *Response {
	return &Response{
		JSONRPC: ProtocolVersion,
		ID:      id,
		Error:   &ErrorObject{Code: code, Message: message, Data: data},
	}
}
