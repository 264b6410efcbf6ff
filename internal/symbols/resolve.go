package symbols

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dshills/appledocs-mcp/internal/config"
	"github.com/dshills/appledocs-mcp/internal/sdk"
	"github.com/dshills/appledocs-mcp/pkg/types"
)

// Resolver resolves (module, symbol) pairs against the SDK's Swift
// symbol graphs and Objective-C headers.
type Resolver struct {
	extractor sdk.SymbolGraphExtractor
	headers   sdk.HeaderSearcher
	sdkRoot   sdk.SDKResolver
	lister    sdk.DirLister
	cfg       *config.Config
	logger    *slog.Logger
}

// NewResolver creates a resolver over the given providers.
func NewResolver(
	extractor sdk.SymbolGraphExtractor,
	headers sdk.HeaderSearcher,
	sdkRoot sdk.SDKResolver,
	lister sdk.DirLister,
	cfg *config.Config,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		extractor: extractor,
		headers:   headers,
		sdkRoot:   sdkRoot,
		lister:    lister,
		cfg:       cfg,
		logger:    logger,
	}
}

// Resolve looks up symbol within module and renders the result as text.
// Collaborator failures surface as descriptive text, never as errors.
func (r *Resolver) Resolve(ctx context.Context, module, symbol string) string {
	root, err := r.sdkRoot.ResolveSDKRoot(ctx)
	if err != nil {
		r.logger.Warn("SDK resolution failed", "error", err)
		return fmt.Sprintf("Could not resolve the active SDK: %v", err)
	}

	// Step 1: Swift symbol graph, when the module's Swift directory
	// exists. An exact match short-circuits everything below. A failed
	// extraction falls through to header search rather than counting
	// as "not found".
	var provisional string
	if r.dirExists(sdk.SwiftModuleDir(root, module)) {
		records, err := r.extractor.ExtractSymbolGraph(ctx, module, root)
		if err != nil {
			r.logger.Warn("symbol graph extraction failed", "module", module, "error", err)
		} else {
			exact, fallback := scanRecords(records, symbol)
			if exact != nil {
				return formatRecord(module, *exact)
			}
			if fallback != nil {
				provisional = formatRecord(module, *fallback)
			} else {
				provisional = r.formatSuggestions(records, module, symbol)
			}
		}
	}

	// Step 2: Objective-C headers. A hit here wins over any inexact
	// Swift result.
	if headersDir := sdk.ModuleHeadersDir(root, module); r.dirExists(headersDir) {
		text, err := r.headers.SearchHeaderText(ctx, symbol, headersDir, r.cfg.Search.HeaderResultCap)
		if err != nil {
			r.logger.Warn("header search failed", "module", module, "symbol", symbol, "error", err)
		} else if text != "" {
			return formatHeaderHit(module, symbol, text)
		}
	}

	if provisional != "" {
		return provisional
	}
	return fmt.Sprintf("Module %q not found in the SDK. Use list_frameworks to see available frameworks.", module)
}

// scanRecords scans a symbol graph for symbol. The exact match
// (case-sensitive or case-insensitive equality) short-circuits the
// scan; otherwise the first case-insensitive substring match is
// retained as a fallback.
func scanRecords(records []types.SymbolRecord, symbol string) (exact, fallback *types.SymbolRecord) {
	needle := strings.ToLower(symbol)
	for i := range records {
		title := records[i].Title
		if title == symbol || strings.EqualFold(title, symbol) {
			return &records[i], nil
		}
		if fallback == nil && strings.Contains(strings.ToLower(title), needle) {
			fallback = &records[i]
		}
	}
	return nil, fallback
}

// formatSuggestions renders the "did you mean" outcome for a module
// whose graph extracted cleanly but matched nothing.
func (r *Resolver) formatSuggestions(records []types.SymbolRecord, module, symbol string) string {
	titles := suggest(records, symbol, r.cfg.Search.SuggestionCap)
	if len(titles) == 0 {
		return fmt.Sprintf("Symbol %q not found in module %q.", symbol, module)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Symbol %q not found in module %q. Did you mean:\n\n", symbol, module)
	for i, title := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	return b.String()
}

func (r *Resolver) dirExists(path string) bool {
	_, err := r.lister.ListDirectoryEntries(path)
	return err == nil
}

// formatRecord renders one resolved symbol: title heading, kind line,
// declaration block and documentation block when present.
func formatRecord(module string, rec types.SymbolRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nModule: %s\nKind: %s (%s)\n", rec.Title, module, rec.Kind(), rec.KindIdentifier)
	if rec.Declaration != "" {
		fmt.Fprintf(&b, "\nDeclaration:\n\n```swift\n%s\n```\n", rec.Declaration)
	}
	if rec.Documentation != "" {
		fmt.Fprintf(&b, "\nDocumentation:\n\n%s\n", rec.Documentation)
	}
	return b.String()
}

// formatHeaderHit renders a successful Objective-C header search.
func formatHeaderHit(module, symbol, text string) string {
	return fmt.Sprintf("Found %q in %s.framework headers:\n\n%s\n", symbol, module, text)
}
