package docsearch

import (
	"path"
	"strings"
)

// Additive relevance bonuses. A path can collect several.
const (
	scoreExactFilename    = 100
	scoreHeaderExtension  = 50
	scoreFrameworkHeaders = 30
	scoreFilenamePrefix   = 25
	scoreDocumentation    = 20
	scoreFilenameSubstr   = 15
	scoreFrameworkName    = 40
)

// Path markers recognized by the scorer and the formatter.
const (
	frameworksMarker = "/frameworks/"
	headersMarker    = "/headers/"
	docsMarker       = "/documentation/"
	docArchiveExt    = ".doccarchive"
)

// Score rates how likely candidate is the documentation a user searching
// for query wants. All comparisons are case-insensitive.
func Score(candidate, query string) int {
	lowerPath := strings.ToLower(candidate)
	filename := path.Base(lowerPath)
	q := strings.ToLower(query)

	score := 0
	if filename == q || strings.Contains(filename, q+".") {
		score += scoreExactFilename
	}
	if strings.HasSuffix(lowerPath, ".h") ||
		strings.HasSuffix(lowerPath, ".swift") ||
		strings.HasSuffix(lowerPath, ".swiftinterface") {
		score += scoreHeaderExtension
	}
	if strings.Contains(lowerPath, frameworksMarker) && strings.Contains(lowerPath, headersMarker) {
		score += scoreFrameworkHeaders
	}
	if strings.HasPrefix(filename, q) {
		score += scoreFilenamePrefix
	}
	if strings.Contains(lowerPath, docsMarker) || strings.Contains(lowerPath, docArchiveExt) {
		score += scoreDocumentation
	}
	if strings.Contains(filename, q) {
		score += scoreFilenameSubstr
	}
	if fw := frameworkName(candidate); fw != "" && strings.HasPrefix(strings.ToLower(fw), q) {
		score += scoreFrameworkName
	}
	return score
}

// frameworkName extracts the framework a path belongs to: the segment
// following the frameworks directory, with any ".framework" suffix
// stripped. Empty when the path has no frameworks segment.
func frameworkName(candidate string) string {
	lowerPath := strings.ToLower(candidate)
	idx := strings.Index(lowerPath, frameworksMarker)
	if idx < 0 {
		return ""
	}
	rest := candidate[idx+len(frameworksMarker):]
	if end := strings.IndexByte(rest, '/'); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSuffix(rest, ".framework")
}

// fileTypeLabel derives a human label from a path's extension.
func fileTypeLabel(candidate string) string {
	lowerPath := strings.ToLower(candidate)
	switch {
	case strings.HasSuffix(lowerPath, ".h"):
		return "Objective-C header"
	case strings.HasSuffix(lowerPath, ".swift"), strings.HasSuffix(lowerPath, ".swiftinterface"):
		return "Swift interface"
	case strings.Contains(lowerPath, docArchiveExt):
		return "Documentation"
	default:
		return "File"
	}
}
