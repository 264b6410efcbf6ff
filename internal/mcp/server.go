package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dshills/appledocs-mcp/internal/config"
	"github.com/dshills/appledocs-mcp/internal/docsearch"
	"github.com/dshills/appledocs-mcp/internal/jsonrpc"
	"github.com/dshills/appledocs-mcp/internal/sdk"
	"github.com/dshills/appledocs-mcp/internal/symbols"
)

// notificationPrefix marks methods that never receive a response.
const notificationPrefix = "notifications/"

// lifecycleState tracks the MCP session. Transitions are recorded but
// not enforced: tool calls are accepted in any state, and initialize is
// re-entrant.
type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateInitialized
	stateServing
)

// Providers bundles the external collaborators injected into the
// server.
type Providers struct {
	Discoverer sdk.PathDiscoverer
	Headers    sdk.HeaderSearcher
	Extractor  sdk.SymbolGraphExtractor
	SDK        sdk.SDKResolver
	Lister     sdk.DirLister
}

// DefaultProviders returns the platform-backed collaborators.
func DefaultProviders() Providers {
	return Providers{
		Discoverer: sdk.NewSpotlight(),
		Headers:    sdk.NewGrepSearcher(),
		Extractor:  sdk.NewExtractor(),
		SDK:        sdk.NewXcrunResolver(),
		Lister:     sdk.NewOSDirLister(),
	}
}

// Server is the MCP protocol engine. All fields are read-only after
// construction except the lifecycle state, which is touched only by the
// single request stream.
type Server struct {
	cfg       *config.Config
	logger    *slog.Logger
	providers Providers
	search    *docsearch.Engine
	resolver  *symbols.Resolver
	state     lifecycleState
}

// NewServer creates an MCP server over the given configuration and
// collaborators.
func NewServer(cfg *config.Config, providers Providers, logger *slog.Logger) *Server {
	return &Server{
		cfg:       cfg,
		logger:    logger,
		providers: providers,
		search: docsearch.NewEngine(
			providers.Discoverer, providers.Headers, providers.Extractor, providers.SDK, cfg, logger),
		resolver: symbols.NewResolver(
			providers.Extractor, providers.Headers, providers.SDK, providers.Lister, cfg, logger),
	}
}

// Serve reads newline-delimited JSON messages from r until EOF,
// processing one line at a time in submission order and writing one
// serialized response line (or nothing, for notifications) per input
// line. Output is flushed after every line.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	out := bufio.NewWriter(w)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		responses, batch := s.ProcessLine(ctx, line)
		if len(responses) == 0 {
			continue
		}

		var payload []byte
		var err error
		if batch {
			payload, err = json.Marshal(responses)
		} else {
			payload, err = json.Marshal(responses[0])
		}
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		if _, err := out.Write(append(payload, '\n')); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("failed to flush response: %w", err)
		}
	}
	return scanner.Err()
}

// ProcessLine decodes one input line and produces its responses. The
// second return value reports whether the input was a batch, in which
// case the responses serialize as a JSON array.
//
// Framing failures (not JSON at all) yield a -32700 parse error;
// structural failures (JSON that is not a request or batch) yield
// -32600. Batch elements are handled independently: one element's
// failure never short-circuits the rest, and response order matches
// the order of the non-notification elements.
func (s *Server) ProcessLine(ctx context.Context, raw []byte) ([]*jsonrpc.Response, bool) {
	var v jsonrpc.Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return []*jsonrpc.Response{
			jsonrpc.NewErrorResponse(jsonrpc.NullID(), jsonrpc.ErrCodeParse, "Parse error"),
		}, false
	}

	if elems, ok := v.AsArray(); ok {
		if len(elems) == 0 {
			return []*jsonrpc.Response{
				jsonrpc.NewErrorResponse(jsonrpc.NullID(), jsonrpc.ErrCodeInvalidRequest, "Invalid Request"),
			}, false
		}
		var responses []*jsonrpc.Response
		for _, elem := range elems {
			req, err := jsonrpc.RequestFromValue(elem)
			if err != nil {
				responses = append(responses,
					jsonrpc.NewErrorResponse(jsonrpc.NullID(), jsonrpc.ErrCodeInvalidRequest, "Invalid Request"))
				continue
			}
			if resp := s.dispatch(ctx, req); resp != nil {
				responses = append(responses, resp)
			}
		}
		return responses, true
	}

	req, err := jsonrpc.RequestFromValue(v)
	if err != nil {
		return []*jsonrpc.Response{
			jsonrpc.NewErrorResponse(jsonrpc.NullID(), jsonrpc.ErrCodeInvalidRequest, "Invalid Request"),
		}, false
	}
	if resp := s.dispatch(ctx, req); resp != nil {
		return []*jsonrpc.Response{resp}, false
	}
	return nil, false
}

// dispatch routes one request by method. Notifications never produce a
// response, not even for unrecognized methods.
func (s *Server) dispatch(ctx context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	if req.Method == "initialized" || strings.HasPrefix(req.Method, notificationPrefix) {
		if req.Method == "initialized" || req.Method == notificationPrefix+"initialized" {
			s.state = stateServing
		}
		return nil
	}
	if req.IsNotification() {
		if req.Method == "initialize" {
			s.state = stateInitialized
		}
		return nil
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "tools/list":
		return jsonrpc.NewResponse(*req.ID, ToolsListResult{Tools: toolDescriptors()})
	case "tools/call":
		return s.handleToolCall(ctx, req)
	case "ping":
		return jsonrpc.NewResponse(*req.ID, struct{}{})
	default:
		return jsonrpc.NewErrorResponse(*req.ID, jsonrpc.ErrCodeMethodNotFound,
			"Method not found: "+req.Method)
	}
}

// handleInitialize negotiates the protocol version and returns the
// server identity and capabilities. Idempotent: repeated calls return
// fresh capabilities.
func (s *Server) handleInitialize(req *jsonrpc.Request) *jsonrpc.Response {
	version := DefaultProtocolVersion
	if requested, ok := req.Params.Get("protocolVersion"); ok {
		if str, ok := requested.AsString(); ok && recognizedProtocolVersions[str] {
			version = str
		}
	}
	s.state = stateInitialized

	return jsonrpc.NewResponse(*req.ID, InitializeResult{
		ProtocolVersion: version,
		Capabilities:    ServerCapabilities{Tools: ToolsCapability{}},
		ServerInfo: ServerInfo{
			Name:    s.cfg.Server.Name,
			Version: s.cfg.Server.Version,
		},
	})
}
