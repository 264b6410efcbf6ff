package docsearch

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/appledocs-mcp/internal/config"
	"github.com/dshills/appledocs-mcp/internal/sdk"
	"github.com/dshills/appledocs-mcp/pkg/types"
)

// tertiaryTrigger gates the symbol-graph scan: it only runs when
// primary discovery produced fewer results than this.
const tertiaryTrigger = config.DefaultTertiaryTrigger

// symbolOnlyThreshold selects the symbol-match-only rendering when
// primary discovery found fewer results than this and no header text
// was retained.
const symbolOnlyThreshold = 3

// Engine runs the three-strategy documentation search funnel.
type Engine struct {
	discoverer sdk.PathDiscoverer
	headers    sdk.HeaderSearcher
	extractor  sdk.SymbolGraphExtractor
	resolver   sdk.SDKResolver
	cfg        *config.Config
	logger     *slog.Logger

	// DocRoots supplies the existing documentation roots for primary
	// discovery. Overridable for tests; defaults to the platform roots.
	DocRoots func() []string
}

// NewEngine creates a search engine over the given providers.
func NewEngine(
	discoverer sdk.PathDiscoverer,
	headers sdk.HeaderSearcher,
	extractor sdk.SymbolGraphExtractor,
	resolver sdk.SDKResolver,
	cfg *config.Config,
	logger *slog.Logger,
) *Engine {
	extra := cfg.Docs.ExtraRoots
	return &Engine{
		discoverer: discoverer,
		headers:    headers,
		extractor:  extractor,
		resolver:   resolver,
		cfg:        cfg,
		logger:     logger,
		DocRoots:   func() []string { return sdk.DocumentationRoots(extra) },
	}
}

// Search runs the funnel for query and renders the merged result.
// Collaborator failures are folded into the funnel as absent results;
// Search itself never fails.
func (e *Engine) Search(ctx context.Context, query string, limit int) string {
	primary := e.primaryDiscovery(ctx, query)

	var headerText string
	if len(primary) < limit {
		headerText = e.secondaryDiscovery(ctx, query)
	}

	var symbolMatches []types.SymbolMatch
	if len(primary) < tertiaryTrigger {
		symbolMatches = e.tertiaryDiscovery(ctx, query)
	}

	return merge(query, limit, primary, headerText, symbolMatches)
}

// primaryDiscovery scores every Spotlight candidate for query.
func (e *Engine) primaryDiscovery(ctx context.Context, query string) []types.RankedPath {
	roots := e.DocRoots()
	if len(roots) == 0 {
		return nil
	}
	paths, err := e.discoverer.DiscoverPaths(ctx, sdk.BuildQuery(query), roots)
	if err != nil {
		e.logger.Warn("path discovery failed", "query", query, "error", err)
		return nil
	}
	ranked := make([]types.RankedPath, 0, len(paths))
	for _, p := range paths {
		ranked = append(ranked, types.RankedPath{Path: p, Score: Score(p, query)})
	}
	return ranked
}

// secondaryDiscovery greps the SDK frameworks tree. Any failure or a
// "nothing found" outcome is absence.
func (e *Engine) secondaryDiscovery(ctx context.Context, query string) string {
	sdkRoot, err := e.resolver.ResolveSDKRoot(ctx)
	if err != nil {
		e.logger.Warn("SDK resolution failed", "error", err)
		return ""
	}
	text, err := e.headers.SearchHeaderText(ctx, query, sdk.FrameworksDir(sdkRoot), e.cfg.Search.HeaderResultCap)
	if err != nil {
		e.logger.Warn("header search failed", "query", query, "error", err)
		return ""
	}
	return text
}

// tertiaryDiscovery scans the common frameworks' symbol graphs for
// titles containing query, case-insensitively, up to the configured cap
// across all frameworks. The per-framework extractions run in parallel;
// results merge in the fixed framework order so the outcome matches a
// sequential scan with early stop at the cap.
func (e *Engine) tertiaryDiscovery(ctx context.Context, query string) []types.SymbolMatch {
	sdkRoot, err := e.resolver.ResolveSDKRoot(ctx)
	if err != nil {
		e.logger.Warn("SDK resolution failed", "error", err)
		return nil
	}

	scanCap := e.cfg.Search.SymbolScanCap
	needle := strings.ToLower(query)
	frameworks := e.cfg.Docs.CommonFrameworks
	perFramework := make([][]types.SymbolMatch, len(frameworks))

	g, gctx := errgroup.WithContext(ctx)
	for i, fw := range frameworks {
		g.Go(func() error {
			records, err := e.extractor.ExtractSymbolGraph(gctx, fw, sdkRoot)
			if err != nil {
				e.logger.Debug("symbol graph scan skipped", "framework", fw, "error", err)
				return nil
			}
			var matches []types.SymbolMatch
			for _, rec := range records {
				if !strings.Contains(strings.ToLower(rec.Title), needle) {
					continue
				}
				matches = append(matches, types.SymbolMatch{
					Framework: fw,
					Symbol:    rec.Title,
					Kind:      rec.Kind(),
				})
				if len(matches) >= scanCap {
					break
				}
			}
			perFramework[i] = matches
			return nil
		})
	}
	_ = g.Wait()

	var merged []types.SymbolMatch
	for _, matches := range perFramework {
		for _, m := range matches {
			merged = append(merged, m)
			if len(merged) >= scanCap {
				return merged
			}
		}
	}
	return merged
}

// merge applies the result-selection policy, in priority order: nothing
// anywhere, symbol matches with thin primary results and no header
// text, combined primary plus header text, or primary only.
func merge(query string, limit int, primary []types.RankedPath, headerText string, symbolMatches []types.SymbolMatch) string {
	switch {
	case len(primary) == 0 && headerText == "" && len(symbolMatches) == 0:
		return formatNoResults(query)
	case len(symbolMatches) > 0 && len(primary) < symbolOnlyThreshold && headerText == "":
		return formatSymbolMatches(query, symbolMatches)
	case headerText != "":
		var b strings.Builder
		fmt.Fprintf(&b, "## Documentation files\n\n%s", formatRanked(query, primary, limit))
		fmt.Fprintf(&b, "\n## Header matches\n\n%s\n", headerText)
		return b.String()
	default:
		return formatRanked(query, primary, limit)
	}
}

// formatRanked renders primary results sorted by score descending,
// truncated to limit. The sort is stable: ties keep discovery order.
func formatRanked(query string, primary []types.RankedPath, limit int) string {
	ranked := make([]types.RankedPath, len(primary))
	copy(ranked, primary)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s) for %q:\n\n", len(ranked), query)
	for i, rp := range ranked {
		fmt.Fprintf(&b, "%d. ", i+1)
		if fw := frameworkName(rp.Path); fw != "" {
			fmt.Fprintf(&b, "[%s] ", fw)
		}
		fmt.Fprintf(&b, "%s — %s\n   %s\n", fileTypeLabel(rp.Path), path.Base(rp.Path), rp.Path)
	}
	return b.String()
}

// formatSymbolMatches renders the symbol-match-only outcome.
func formatSymbolMatches(query string, matches []types.SymbolMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d symbol(s) matching %q:\n\n", len(matches), query)
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s: %s (%s)\n", i+1, m.Framework, m.Symbol, m.Kind)
	}
	b.WriteString("\nTip: use get_symbol_info with the framework and symbol name for declarations and documentation.\n")
	return b.String()
}

// formatNoResults renders the empty outcome with concrete next steps.
func formatNoResults(query string) string {
	return fmt.Sprintf(`No documentation found for %q.

Suggestions:
- Try a more specific term (e.g. a full class or function name)
- Use get_symbol_info with a framework name (e.g. module "Foundation", symbol %q)
- Use list_frameworks to see which frameworks are available in the SDK
`, query, query)
}
