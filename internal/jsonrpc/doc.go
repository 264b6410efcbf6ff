// Package jsonrpc implements the JSON-RPC 2.0 wire model for the
// AppleDocs MCP server.
//
// The package provides three layers:
//
//   - Value, a tagged union able to represent any JSON document with
//     symmetric encode/decode. Incoming lines are decoded into a Value
//     first and only then interpreted as protocol messages, so malformed
//     input is rejected at a single boundary.
//   - RequestID, the {string, integer, null} correlation token.
//   - Request, Response and ErrorObject, the protocol envelope, together
//     with the reserved error codes.
//
// # Decoding Requests
//
// A Request is never unmarshaled directly from bytes. Callers decode a
// Value and convert it:
//
//	var v jsonrpc.Value
//	if err := json.Unmarshal(line, &v); err != nil {
//	    // framing error, -32700
//	}
//	req, err := jsonrpc.RequestFromValue(v)
//	if err != nil {
//	    // structural error, -32600
//	}
//
// This keeps the distinction between framing errors (not JSON at all)
// and structural errors (JSON that is not a well-formed request) explicit.
package jsonrpc
