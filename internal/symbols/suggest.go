package symbols

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/dshills/appledocs-mcp/pkg/types"
)

// suggest returns up to max titles that contain the first three
// characters of symbol (case-insensitive), ranked by Jaro-Winkler
// similarity to the full symbol so the closest names come first.
func suggest(records []types.SymbolRecord, symbol string, max int) []string {
	prefix := strings.ToLower(symbol)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	type scored struct {
		title      string
		similarity float32
	}
	var candidates []scored
	seen := make(map[string]struct{})
	for _, rec := range records {
		if _, dup := seen[rec.Title]; dup {
			continue
		}
		if !strings.Contains(strings.ToLower(rec.Title), prefix) {
			continue
		}
		seen[rec.Title] = struct{}{}
		sim, err := edlib.StringsSimilarity(symbol, rec.Title, edlib.JaroWinkler)
		if err != nil {
			sim = 0
		}
		candidates = append(candidates, scored{title: rec.Title, similarity: sim})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})
	if len(candidates) > max {
		candidates = candidates[:max]
	}

	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.title
	}
	return titles
}
