// Package config loads the server configuration from an optional TOML
// file with environment overrides. The configuration is read once at
// startup and is read-only afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names the environment variable overriding the config
// file location.
const EnvConfigPath = "APPLEDOCS_CONFIG"

// EnvLogLevel names the environment variable selecting the log level.
const EnvLogLevel = "APPLEDOCS_LOG_LEVEL"

// Default search caps. The funnel constants mirror the sufficiency
// gates of the documentation-search strategies.
const (
	DefaultSearchLimit     = 20
	DefaultSymbolScanCap   = 10
	DefaultSuggestionCap   = 10
	DefaultSymbolListCap   = 200
	DefaultHeaderResultCap = 20
	DefaultTertiaryTrigger = 5
)

// Config is the full server configuration.
type Config struct {
	Server Server `toml:"server"`
	Search Search `toml:"search"`
	Docs   Docs   `toml:"docs"`
}

// Server identifies the MCP server in initialize responses.
type Server struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Search holds the result caps for the discovery strategies.
type Search struct {
	DefaultLimit    int `toml:"default_limit"`
	SymbolScanCap   int `toml:"symbol_scan_cap"`
	SuggestionCap   int `toml:"suggestion_cap"`
	SymbolListCap   int `toml:"symbol_list_cap"`
	HeaderResultCap int `toml:"header_result_cap"`
}

// Docs configures documentation discovery roots and the fixed framework
// list scanned by the tertiary strategy.
type Docs struct {
	ExtraRoots       []string `toml:"extra_roots"`
	CommonFrameworks []string `toml:"common_frameworks"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Name:    "appledocs-mcp",
			Version: "1.0.0",
		},
		Search: Search{
			DefaultLimit:    DefaultSearchLimit,
			SymbolScanCap:   DefaultSymbolScanCap,
			SuggestionCap:   DefaultSuggestionCap,
			SymbolListCap:   DefaultSymbolListCap,
			HeaderResultCap: DefaultHeaderResultCap,
		},
		Docs: Docs{
			CommonFrameworks: []string{
				"Foundation",
				"SwiftUI",
				"AppKit",
				"UIKit",
				"Combine",
				"CoreGraphics",
				"CoreFoundation",
			},
		},
	}
}

// Load reads the configuration from path. An empty path falls back to
// the APPLEDOCS_CONFIG environment variable; if neither names a file,
// the defaults are returned. A present but unreadable or malformed file
// is an error rather than a silent fallback.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Relative extra roots resolve against the config file's directory.
	dir := filepath.Dir(path)
	for i, root := range cfg.Docs.ExtraRoots {
		if !filepath.IsAbs(root) {
			cfg.Docs.ExtraRoots[i] = filepath.Clean(filepath.Join(dir, root))
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Name == "" {
		return fmt.Errorf("server.name cannot be empty")
	}
	if c.Search.DefaultLimit < 1 {
		return fmt.Errorf("search.default_limit must be >= 1")
	}
	if c.Search.SymbolScanCap < 1 {
		return fmt.Errorf("search.symbol_scan_cap must be >= 1")
	}
	if len(c.Docs.CommonFrameworks) == 0 {
		return fmt.Errorf("docs.common_frameworks cannot be empty")
	}
	return nil
}
