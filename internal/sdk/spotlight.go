package sdk

import (
	"context"
	"fmt"
	"strings"
)

// Spotlight discovers documentation paths through mdfind.
type Spotlight struct{}

// NewSpotlight creates a Spotlight-backed path discoverer.
func NewSpotlight() *Spotlight { return &Spotlight{} }

// BuildQuery assembles the mdfind metadata expression for a
// documentation query: exact display-name equality, substring
// display-name match, .h/.swift filenames containing the query, or
// full-text content containing it, restricted to source, header and
// documentation content kinds.
func BuildQuery(query string) string {
	q := escapeQuery(query)
	nameClauses := []string{
		fmt.Sprintf(`kMDItemDisplayName == "%s"`, q),
		fmt.Sprintf(`kMDItemDisplayName == "*%s*"cd`, q),
		fmt.Sprintf(`kMDItemFSName == "*%s*.h"cd`, q),
		fmt.Sprintf(`kMDItemFSName == "*%s*.swift"cd`, q),
		fmt.Sprintf(`kMDItemTextContent == "*%s*"cd`, q),
	}
	kindClauses := []string{
		`kMDItemContentTypeTree == "public.source-code"`,
		`kMDItemContentTypeTree == "public.c-header"`,
		`kMDItemContentTypeTree == "com.apple.documentation"`,
	}
	return fmt.Sprintf("(%s) && (%s)",
		strings.Join(nameClauses, " || "),
		strings.Join(kindClauses, " || "))
}

// escapeQuery neutralizes metadata-expression metacharacters in user
// input.
func escapeQuery(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `'`, `\'`)
	return r.Replace(query)
}

// DiscoverPaths runs mdfind with the given expression, scoped to roots
// via -onlyin. Returns one path per output line.
func (s *Spotlight) DiscoverPaths(ctx context.Context, queryExpression string, roots []string) ([]string, error) {
	args := make([]string, 0, 2*len(roots)+1)
	for _, root := range roots {
		args = append(args, "-onlyin", root)
	}
	args = append(args, queryExpression)

	out, err := runCommand(ctx, "mdfind", args...)
	if err != nil {
		return nil, err
	}
	if out.exitCode != 0 {
		return nil, fmt.Errorf("mdfind exited %d: %s", out.exitCode, strings.TrimSpace(string(out.stderr)))
	}

	var paths []string
	for _, line := range strings.Split(string(out.stdout), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
