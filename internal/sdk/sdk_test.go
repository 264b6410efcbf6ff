package sdk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	expr := BuildQuery("NSWindow")

	assert.Contains(t, expr, `kMDItemDisplayName == "NSWindow"`)
	assert.Contains(t, expr, `kMDItemDisplayName == "*NSWindow*"cd`)
	assert.Contains(t, expr, `kMDItemFSName == "*NSWindow*.h"cd`)
	assert.Contains(t, expr, `kMDItemFSName == "*NSWindow*.swift"cd`)
	assert.Contains(t, expr, `kMDItemTextContent == "*NSWindow*"cd`)
	assert.Contains(t, expr, `public.source-code`)
	assert.Contains(t, expr, `public.c-header`)
	assert.Contains(t, expr, `com.apple.documentation`)
}

func TestBuildQuery_EscapesInput(t *testing.T) {
	expr := BuildQuery(`a"b`)
	assert.Contains(t, expr, `a\"b`)
	assert.NotContains(t, expr, `"a"b"`)
}

func TestParseSymbolGraph(t *testing.T) {
	data := []byte(`{
		"symbols": [
			{
				"names": {"title": "URLSession"},
				"kind": {"identifier": "swift.class"},
				"declarationFragments": [
					{"spelling": "class"},
					{"spelling": " "},
					{"spelling": "URLSession"}
				],
				"docComment": {"lines": [{"text": "Coordinates requests."}, {"text": "Second line."}]}
			},
			{
				"names": {"title": "bare"},
				"kind": {"identifier": "swift.func"}
			}
		]
	}`)

	records, err := parseSymbolGraph(data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "URLSession", records[0].Title)
	assert.Equal(t, "swift.class", records[0].KindIdentifier)
	assert.Equal(t, "class URLSession", records[0].Declaration)
	assert.Equal(t, "Coordinates requests.\nSecond line.", records[0].Documentation)
	assert.Equal(t, "class", records[0].Kind())

	assert.Equal(t, "bare", records[1].Title)
	assert.Empty(t, records[1].Declaration)
	assert.Empty(t, records[1].Documentation)
}

func TestParseSymbolGraph_Invalid(t *testing.T) {
	_, err := parseSymbolGraph([]byte(`{`))
	assert.Error(t, err)
}

func TestRunCommand_CapturesStreamsAndExitCode(t *testing.T) {
	ctx := context.Background()

	out, err := runCommand(ctx, "sh", "-c", "echo to-stdout; echo to-stderr 1>&2")
	require.NoError(t, err)
	assert.Equal(t, 0, out.exitCode)
	assert.Contains(t, string(out.stdout), "to-stdout")
	assert.Contains(t, string(out.stderr), "to-stderr")

	out, err = runCommand(ctx, "sh", "-c", "exit 3")
	require.NoError(t, err, "nonzero exit is not a runner error")
	assert.Equal(t, 3, out.exitCode)
}

func TestRunCommand_MissingBinary(t *testing.T) {
	_, err := runCommand(context.Background(), "definitely-not-a-real-binary-4x9")
	assert.Error(t, err)
}

func TestRunCommand_DrainsLargeOutput(t *testing.T) {
	// Larger than any OS pipe buffer; hangs if output is not drained
	// before wait.
	out, err := runCommand(context.Background(), "sh", "-c",
		"dd if=/dev/zero bs=1024 count=2048 2>/dev/null | tr '\\0' 'a'")
	require.NoError(t, err)
	assert.Equal(t, 0, out.exitCode)
	assert.Len(t, out.stdout, 2048*1024)
}

func TestSDKPathHelpers(t *testing.T) {
	sdkRoot := "/sdk/MacOSX.sdk"

	assert.Equal(t,
		filepath.Join(sdkRoot, "System", "Library", "Frameworks"),
		FrameworksDir(sdkRoot))
	assert.Equal(t,
		filepath.Join(sdkRoot, "System", "Library", "Frameworks", "AppKit.framework", "Headers"),
		ModuleHeadersDir(sdkRoot, "AppKit"))
	assert.Equal(t,
		filepath.Join(sdkRoot, "usr", "lib", "swift", "Foundation.swiftmodule"),
		SwiftModuleDir(sdkRoot, "Foundation"))
}

func TestDocumentationRoots_OnlyExisting(t *testing.T) {
	extra := t.TempDir()
	roots := DocumentationRoots([]string{extra, "/definitely/not/a/real/root"})

	assert.Contains(t, roots, extra)
	assert.NotContains(t, roots, "/definitely/not/a/real/root")
}

func TestListDirectoryEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "AppKit.framework"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foundation.framework"), nil, 0644))

	names, err := NewOSDirLister().ListDirectoryEntries(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AppKit.framework", "Foundation.framework"}, names)

	_, err = NewOSDirLister().ListDirectoryEntries(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
