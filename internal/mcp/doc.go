// Package mcp implements the Model Context Protocol (MCP) server for
// Apple SDK documentation search.
//
// The MCP server exposes four tools to AI coding assistants:
//   - search_documentation: Search SDK documentation, headers and Swift interfaces
//   - get_symbol_info: Resolve a symbol's declaration and documentation
//   - list_frameworks: List the frameworks of the active SDK
//   - extract_module_symbols: Dump a module's symbols grouped by kind
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"jsonrpc": "2.0", "id": 1, "method": "tools/call", "params": {...}}
//	Server → Client: {"jsonrpc": "2.0", "id": 1, "result": {...}}
//
// Messages are newline-delimited JSON. A request may also be a JSON
// array batching several requests; the server answers with a single
// array of responses in submission order. Notifications (requests
// without an "id") never receive a response.
//
// # Basic Usage
//
// The server is typically started via the serve command:
//
//	appledocs-mcp serve
//
// It then listens on stdin for MCP protocol messages and writes
// responses to stdout. All logging goes to stderr; stdout is reserved
// for the protocol.
//
// # Tool: search_documentation
//
// Search the installed SDKs for a term:
//
//	Request:
//	{
//	  "name": "search_documentation",
//	  "arguments": {
//	    "query": "URLSession",
//	    "limit": 20
//	  }
//	}
//
// The search funnels through three strategies: Spotlight discovery of
// documentation files (ranked by relevance), header text search, and a
// symbol graph scan of the common frameworks when file results are
// thin. Results are rendered as text.
//
// # Tool: get_symbol_info
//
// Resolve one symbol within a framework:
//
//	Request:
//	{
//	  "name": "get_symbol_info",
//	  "arguments": {
//	    "module": "Foundation",
//	    "symbol": "URLSession"
//	  }
//	}
//
// An exact match in the Swift symbol graph wins outright; otherwise the
// Objective-C headers are consulted, and a header hit overrides an
// inexact Swift match. When nothing matches, the response lists
// "did you mean" candidates.
//
// # Error Handling
//
// Protocol-level failures return standard JSON-RPC error responses:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "Invalid params: query parameter is required and cannot be empty",
//	    "data": {
//	      "param": "query",
//	      "reason": "required"
//	    }
//	  }
//	}
//
// Error codes:
//   - -32700: Parse error (input line is not valid JSON)
//   - -32600: Invalid Request (valid JSON, malformed request)
//   - -32601: Method not found
//   - -32602: Invalid params (missing/invalid tool arguments)
//
// Tool execution outcomes are never protocol errors: a search that
// finds nothing, a missing SDK, or a failed extraction all come back as
// descriptive text in a successful tools/call result.
package mcp
