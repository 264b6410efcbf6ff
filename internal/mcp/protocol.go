package mcp

import "github.com/google/jsonschema-go/jsonschema"

// MCP protocol versions the server recognizes. The client's requested
// version is echoed when recognized; otherwise the default is offered.
const DefaultProtocolVersion = "2025-06-18"

var recognizedProtocolVersions = map[string]bool{
	"2024-11-05":           true,
	"2025-03-26":           true,
	DefaultProtocolVersion: true,
}

// InitializeResult is the response to initialize.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ServerInfo         `json:"serverInfo"`
}

// ServerCapabilities declares what the server supports.
type ServerCapabilities struct {
	Tools ToolsCapability `json:"tools"`
}

// ToolsCapability signals the server exposes tools.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// ServerInfo identifies the server.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsListResult is the response to tools/list.
type ToolsListResult struct {
	Tools []Tool `json:"tools"`
}

// Tool describes a single invocable tool.
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// CallToolResult is the result envelope of tools/call. IsError is
// always emitted; execution-level failures are reported as descriptive
// text with IsError false, never as protocol errors.
type CallToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

// ContentBlock is one block of tool output.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// textResult wraps a text payload in the tool result envelope.
func textResult(text string) *CallToolResult {
	return &CallToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}
