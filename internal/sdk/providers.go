package sdk

import (
	"context"
	"errors"

	"github.com/dshills/appledocs-mcp/pkg/types"
)

// Provider failure modes. Execution-level failures (the tool ran but
// found nothing, or exited nonzero) surface through these sentinels so
// tool handlers can convert them to descriptive text instead of
// protocol errors.
var (
	// ErrExtractionFailed reports a nonzero exit from symbol-graph
	// extraction.
	ErrExtractionFailed = errors.New("symbol graph extraction failed")
	// ErrSDKNotFound reports that no SDK root could be resolved.
	ErrSDKNotFound = errors.New("SDK root not found")
)

// PathDiscoverer returns candidate file paths for a metadata query
// expression, optionally scoped to a set of root directories.
type PathDiscoverer interface {
	DiscoverPaths(ctx context.Context, queryExpression string, roots []string) ([]string, error)
}

// HeaderSearcher runs a text search for query under rootDir and returns
// the raw match output. An empty string with a nil error means nothing
// was found.
type HeaderSearcher interface {
	SearchHeaderText(ctx context.Context, query, rootDir string, maxResults int) (string, error)
}

// SymbolGraphExtractor extracts the symbol graph of a module against an
// SDK root.
type SymbolGraphExtractor interface {
	ExtractSymbolGraph(ctx context.Context, moduleName, sdkRoot string) ([]types.SymbolRecord, error)
}

// SDKResolver returns the filesystem root of the active SDK.
type SDKResolver interface {
	ResolveSDKRoot(ctx context.Context) (string, error)
}

// DirLister lists the entry names of a directory.
type DirLister interface {
	ListDirectoryEntries(path string) ([]string, error)
}
