package mcp

import "github.com/google/jsonschema-go/jsonschema"

// Tool names.
const (
	ToolSearchDocumentation  = "search_documentation"
	ToolGetSymbolInfo        = "get_symbol_info"
	ToolListFrameworks       = "list_frameworks"
	ToolExtractModuleSymbols = "extract_module_symbols"
)

// toolDescriptors returns the static descriptors for the four tools.
func toolDescriptors() []Tool {
	return []Tool{
		{
			Name:        ToolSearchDocumentation,
			Description: "Search Apple SDK documentation, headers and Swift interfaces for a term. Combines Spotlight discovery, header search and symbol graph scanning.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"query": {
						Type:        "string",
						Description: "Search term (class, function, protocol or framework name)",
					},
					"limit": {
						Type:        "integer",
						Description: "Maximum number of results to return (default 20)",
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        ToolGetSymbolInfo,
			Description: "Look up a symbol's declaration and documentation within a framework, preferring exact matches from the Swift symbol graph over header text.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"module": {
						Type:        "string",
						Description: "Framework or module name (e.g. Foundation, AppKit)",
					},
					"symbol": {
						Type:        "string",
						Description: "Symbol name to resolve (e.g. URLSession)",
					},
				},
				Required: []string{"module", "symbol"},
			},
		},
		{
			Name:        ToolListFrameworks,
			Description: "List the frameworks available in the active SDK, optionally filtered by a substring.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"filter": {
						Type:        "string",
						Description: "Case-insensitive substring filter on framework names",
					},
				},
			},
		},
		{
			Name:        ToolExtractModuleSymbols,
			Description: "Extract and list the symbols of a module from its Swift symbol graph, grouped by kind.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"module": {
						Type:        "string",
						Description: "Module name to extract (e.g. Combine)",
					},
					"kind": {
						Type:        "string",
						Description: "Symbol kind to keep (e.g. class, struct, func); \"all\" keeps everything",
					},
				},
				Required: []string{"module"},
			},
		},
	}
}
