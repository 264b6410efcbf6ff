package sdk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// XcrunResolver resolves the active SDK root via xcrun.
type XcrunResolver struct{}

// NewXcrunResolver creates an xcrun-backed SDK resolver.
func NewXcrunResolver() *XcrunResolver { return &XcrunResolver{} }

// ResolveSDKRoot returns the path printed by "xcrun --show-sdk-path".
func (r *XcrunResolver) ResolveSDKRoot(ctx context.Context) (string, error) {
	out, err := runCommand(ctx, "xcrun", "--show-sdk-path")
	if err != nil {
		return "", err
	}
	if out.exitCode != 0 {
		return "", fmt.Errorf("%w: xcrun exited %d: %s",
			ErrSDKNotFound, out.exitCode, strings.TrimSpace(string(out.stderr)))
	}
	path := strings.TrimSpace(string(out.stdout))
	if path == "" {
		return "", ErrSDKNotFound
	}
	return path, nil
}

// OSDirLister lists directories through the local filesystem.
type OSDirLister struct{}

// NewOSDirLister creates a filesystem-backed directory lister.
func NewOSDirLister() *OSDirLister { return &OSDirLister{} }

// ListDirectoryEntries returns the entry names of path.
func (l *OSDirLister) ListDirectoryEntries(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// DocumentationRoots returns the documentation discovery roots that
// exist on this machine: the user documentation cache, the installed
// Xcode tree, the CommandLineTools tree, and any configured extras.
func DocumentationRoots(extra []string) []string {
	candidates := []string{
		"/Applications/Xcode.app/Contents/Developer",
		"/Library/Developer/CommandLineTools",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append([]string{
			filepath.Join(home, "Library", "Developer", "Shared", "Documentation"),
		}, candidates...)
	}
	candidates = append(candidates, extra...)

	var roots []string
	for _, root := range candidates {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			roots = append(roots, root)
		}
	}
	return roots
}

// FrameworksDir returns the frameworks directory of an SDK root.
func FrameworksDir(sdkRoot string) string {
	return filepath.Join(sdkRoot, "System", "Library", "Frameworks")
}

// ModuleHeadersDir returns the Objective-C headers directory of a
// framework within an SDK root.
func ModuleHeadersDir(sdkRoot, module string) string {
	return filepath.Join(FrameworksDir(sdkRoot), module+".framework", "Headers")
}

// SwiftModuleDir returns the Swift module directory used to decide
// whether a module is introspectable as Swift.
func SwiftModuleDir(sdkRoot, module string) string {
	return filepath.Join(sdkRoot, "usr", "lib", "swift", module+".swiftmodule")
}
