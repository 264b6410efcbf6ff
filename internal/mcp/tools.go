package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/appledocs-mcp/internal/jsonrpc"
	"github.com/dshills/appledocs-mcp/internal/sdk"
)

// handleToolCall validates the tools/call envelope and routes to the
// named tool. Malformed params are protocol errors (-32602); once a
// tool runs, its failures are reported as descriptive result text.
func (s *Server) handleToolCall(ctx context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	params, ok := req.Params.AsObject()
	if !ok {
		return jsonrpc.NewErrorResponse(*req.ID, jsonrpc.ErrCodeInvalidParams, "Invalid params")
	}
	nameVal, ok := params["name"]
	if !ok {
		return jsonrpc.NewErrorResponse(*req.ID, jsonrpc.ErrCodeInvalidParams, "Invalid params")
	}
	name, ok := nameVal.AsString()
	if !ok || name == "" {
		return jsonrpc.NewErrorResponse(*req.ID, jsonrpc.ErrCodeInvalidParams, "Invalid params")
	}

	args := map[string]jsonrpc.Value{}
	if argsVal, present := params["arguments"]; present {
		args, ok = argsVal.AsObject()
		if !ok {
			return jsonrpc.NewErrorResponse(*req.ID, jsonrpc.ErrCodeInvalidParams, "Invalid params")
		}
	}

	s.logger.Debug("tool call", "tool", name)

	switch name {
	case ToolSearchDocumentation:
		query, resp := s.requiredArg(req, args, "query")
		if resp != nil {
			return resp
		}
		limit := s.cfg.Search.DefaultLimit
		if lv, ok := args["limit"]; ok {
			if n, ok := lv.AsInt(); ok && n > 0 {
				limit = int(n)
			}
		}
		return jsonrpc.NewResponse(*req.ID, textResult(s.search.Search(ctx, query, limit)))

	case ToolGetSymbolInfo:
		module, resp := s.requiredArg(req, args, "module")
		if resp != nil {
			return resp
		}
		symbol, resp := s.requiredArg(req, args, "symbol")
		if resp != nil {
			return resp
		}
		return jsonrpc.NewResponse(*req.ID, textResult(s.resolver.Resolve(ctx, module, symbol)))

	case ToolListFrameworks:
		var filter string
		if fv, ok := args["filter"]; ok {
			filter, _ = fv.AsString()
		}
		return jsonrpc.NewResponse(*req.ID, textResult(s.listFrameworks(ctx, filter)))

	case ToolExtractModuleSymbols:
		module, resp := s.requiredArg(req, args, "module")
		if resp != nil {
			return resp
		}
		var kind string
		if kv, ok := args["kind"]; ok {
			kind, _ = kv.AsString()
		}
		return jsonrpc.NewResponse(*req.ID, textResult(s.extractModuleSymbols(ctx, module, kind)))

	default:
		return jsonrpc.NewErrorResponse(*req.ID, jsonrpc.ErrCodeInvalidParams, "Unknown tool: "+name)
	}
}

// requiredArg fetches a mandatory non-empty string argument. The
// returned response, when non-nil, is the -32602 error to send back.
func (s *Server) requiredArg(req *jsonrpc.Request, args map[string]jsonrpc.Value, key string) (string, *jsonrpc.Response) {
	if v, ok := args[key]; ok {
		if str, ok := v.AsString(); ok && str != "" {
			return str, nil
		}
	}
	return "", jsonrpc.NewErrorResponseData(*req.ID, jsonrpc.ErrCodeInvalidParams,
		fmt.Sprintf("Invalid params: %s parameter is required and cannot be empty", key),
		map[string]string{"param": key, "reason": "required"})
}

// listFrameworks lists the frameworks of the active SDK, filtered by an
// optional case-insensitive substring. Never fails: environment
// problems render as descriptive text.
func (s *Server) listFrameworks(ctx context.Context, filter string) string {
	root, err := s.providers.SDK.ResolveSDKRoot(ctx)
	if err != nil {
		s.logger.Warn("SDK resolution failed", "error", err)
		return fmt.Sprintf("Could not resolve the active SDK: %v", err)
	}

	entries, err := s.providers.Lister.ListDirectoryEntries(sdk.FrameworksDir(root))
	if err != nil {
		s.logger.Warn("frameworks listing failed", "error", err)
		return fmt.Sprintf("Could not list frameworks in the SDK: %v", err)
	}

	needle := strings.ToLower(filter)
	var names []string
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry, ".framework")
		if !ok {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		if filter != "" {
			return fmt.Sprintf("No frameworks matching %q found in the SDK.", filter)
		}
		return "No frameworks found in the SDK."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d framework(s):\n\n", len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return b.String()
}

// extractModuleSymbols extracts a module's symbol graph and lists its
// symbols grouped by kind. An empty or "all" kind keeps every symbol;
// anything else filters case-insensitively on the short kind name.
func (s *Server) extractModuleSymbols(ctx context.Context, module, kind string) string {
	root, err := s.providers.SDK.ResolveSDKRoot(ctx)
	if err != nil {
		s.logger.Warn("SDK resolution failed", "error", err)
		return fmt.Sprintf("Could not resolve the active SDK: %v", err)
	}

	records, err := s.providers.Extractor.ExtractSymbolGraph(ctx, module, root)
	if err != nil {
		s.logger.Warn("symbol graph extraction failed", "module", module, "error", err)
		return fmt.Sprintf("Could not extract symbols for module %q: %v", module, err)
	}

	keepAll := kind == "" || strings.EqualFold(kind, "all")
	byKind := make(map[string][]string)
	total := 0
	truncated := false
	for _, rec := range records {
		k := rec.Kind()
		if !keepAll && !strings.EqualFold(k, kind) {
			continue
		}
		if total >= s.cfg.Search.SymbolListCap {
			truncated = true
			break
		}
		byKind[k] = append(byKind[k], rec.Title)
		total++
	}

	if total == 0 {
		if keepAll {
			return fmt.Sprintf("No symbols found for module %q.", module)
		}
		return fmt.Sprintf("No symbols of kind %q found for module %q.", kind, module)
	}

	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	var b strings.Builder
	fmt.Fprintf(&b, "# Symbols in %s (%d)\n", module, total)
	for _, k := range kinds {
		fmt.Fprintf(&b, "\n## %s (%d)\n\n", k, len(byKind[k]))
		for _, title := range byKind[k] {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}
	if truncated {
		fmt.Fprintf(&b, "\n(listing capped at %d symbols)\n", s.cfg.Search.SymbolListCap)
	}
	return b.String()
}
