package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/appledocs-mcp/pkg/types"
)

// Extractor produces symbol records by running
// "xcrun swift symbolgraph-extract" into a temporary directory and
// parsing the emitted *.symbols.json files.
type Extractor struct {
	// Target triple passed to the extractor.
	Target string
}

// DefaultTarget is the extraction target when none is configured.
const DefaultTarget = "arm64-apple-macosx14.0"

// NewExtractor creates a symbol-graph extractor for the default target.
func NewExtractor() *Extractor {
	return &Extractor{Target: DefaultTarget}
}

// symbolGraphFile mirrors the subset of the symbol-graph JSON the
// server consumes.
type symbolGraphFile struct {
	Symbols []struct {
		Names struct {
			Title string `json:"title"`
		} `json:"names"`
		Kind struct {
			Identifier string `json:"identifier"`
		} `json:"kind"`
		DeclarationFragments []struct {
			Spelling string `json:"spelling"`
		} `json:"declarationFragments"`
		DocComment *struct {
			Lines []struct {
				Text string `json:"text"`
			} `json:"lines"`
		} `json:"docComment"`
	} `json:"symbols"`
}

// ExtractSymbolGraph extracts moduleName's symbol graph against sdkRoot.
// A nonzero extractor exit surfaces as ErrExtractionFailed so callers
// can distinguish "module cannot be introspected" from "module has no
// matching symbols". The temporary output directory is removed on every
// return path.
func (e *Extractor) ExtractSymbolGraph(ctx context.Context, moduleName, sdkRoot string) ([]types.SymbolRecord, error) {
	tmpDir, err := os.MkdirTemp("", "symbolgraph-")
	if err != nil {
		return nil, fmt.Errorf("failed to create symbol graph dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	out, err := runCommand(ctx, "xcrun", "swift", "symbolgraph-extract",
		"-module-name", moduleName,
		"-target", e.Target,
		"-sdk", sdkRoot,
		"-output-dir", tmpDir,
	)
	if err != nil {
		return nil, err
	}
	if out.exitCode != 0 {
		return nil, fmt.Errorf("%w: module %s: %s",
			ErrExtractionFailed, moduleName, strings.TrimSpace(string(out.stderr)))
	}

	graphs, err := filepath.Glob(filepath.Join(tmpDir, "*.symbols.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list symbol graphs: %w", err)
	}

	var records []types.SymbolRecord
	for _, path := range graphs {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read symbol graph %s: %w", path, err)
		}
		parsed, err := parseSymbolGraph(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse symbol graph %s: %w", path, err)
		}
		records = append(records, parsed...)
	}
	return records, nil
}

// parseSymbolGraph decodes one symbol-graph document into records.
func parseSymbolGraph(data []byte) ([]types.SymbolRecord, error) {
	var graph symbolGraphFile
	if err := json.Unmarshal(data, &graph); err != nil {
		return nil, err
	}

	records := make([]types.SymbolRecord, 0, len(graph.Symbols))
	for _, sym := range graph.Symbols {
		rec := types.SymbolRecord{
			Title:          sym.Names.Title,
			KindIdentifier: sym.Kind.Identifier,
		}
		if len(sym.DeclarationFragments) > 0 {
			var decl strings.Builder
			for _, frag := range sym.DeclarationFragments {
				decl.WriteString(frag.Spelling)
			}
			rec.Declaration = decl.String()
		}
		if sym.DocComment != nil && len(sym.DocComment.Lines) > 0 {
			lines := make([]string, 0, len(sym.DocComment.Lines))
			for _, line := range sym.DocComment.Lines {
				lines = append(lines, line.Text)
			}
			rec.Documentation = strings.Join(lines, "\n")
		}
		records = append(records, rec)
	}
	return records, nil
}
