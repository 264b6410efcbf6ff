// Package types provides shared type definitions for the AppleDocs MCP server.
//
// This package defines the domain types passed between the search and
// resolution engines and the SDK providers: symbol records extracted from
// Swift symbol graphs, scored documentation paths, and symbol-graph match
// summaries.
//
// # Core Types
//
// SymbolRecord represents one symbol from a module's extracted symbol graph:
//
//	record := types.SymbolRecord{
//	    Title:          "URLSession",
//	    KindIdentifier: "swift.class",
//	    Declaration:    "class URLSession : NSObject",
//	    Documentation:  "An object that coordinates a group of related...",
//	}
//
// RankedPath pairs a candidate documentation path with its additive
// relevance score:
//
//	ranked := types.RankedPath{Path: "/.../Headers/NSWindow.h", Score: 205}
//
// All types in this package are ephemeral: they are produced per request
// and never cached or persisted across calls.
package types
