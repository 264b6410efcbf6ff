// Package sdk implements the external collaborators of the AppleDocs
// MCP server: Spotlight path discovery, header-text search, Swift
// symbol-graph extraction, and SDK path resolution, all backed by
// platform command-line tools.
//
// # Providers
//
// Each concern is a small interface so the search and resolution engines
// can be tested against fakes:
//
//   - PathDiscoverer    -> mdfind
//   - HeaderSearcher    -> grep
//   - SymbolGraphExtractor -> xcrun swift symbolgraph-extract
//   - SDKResolver       -> xcrun --show-sdk-path
//   - DirLister         -> os.ReadDir
//
// # Subprocess discipline
//
// Every invocation captures stdout and stderr through pipes that are
// fully drained (concurrently, via errgroup) before the process is
// awaited. Waiting first can deadlock: the child blocks writing into a
// full pipe buffer while the parent blocks in wait.
//
// No invocation carries a timeout; cancellation comes from the caller's
// context.
package sdk
