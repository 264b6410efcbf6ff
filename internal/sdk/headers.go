package sdk

import (
	"context"
	"fmt"
	"strings"
)

// GrepSearcher runs header-text searches with grep.
type GrepSearcher struct{}

// NewGrepSearcher creates a grep-backed header searcher.
func NewGrepSearcher() *GrepSearcher { return &GrepSearcher{} }

// SearchHeaderText greps for query under rootDir, restricted to header
// files, and returns up to maxResults matching lines as one block of
// text. "Nothing found" is an empty string with a nil error: grep's
// exit code 1 is absence, not failure.
func (g *GrepSearcher) SearchHeaderText(ctx context.Context, query, rootDir string, maxResults int) (string, error) {
	out, err := runCommand(ctx, "grep",
		"-r", "-n", "-i",
		"--include=*.h",
		"-F", query,
		rootDir,
	)
	if err != nil {
		return "", err
	}
	switch out.exitCode {
	case 0:
	case 1:
		return "", nil
	default:
		return "", fmt.Errorf("grep exited %d: %s", out.exitCode, strings.TrimSpace(string(out.stderr)))
	}

	lines := strings.Split(strings.TrimRight(string(out.stdout), "\n"), "\n")
	if maxResults > 0 && len(lines) > maxResults {
		lines = append(lines[:maxResults], fmt.Sprintf("... (%d more matches)", len(lines)-maxResults))
	}
	return strings.Join(lines, "\n"), nil
}
