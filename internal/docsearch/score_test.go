package docsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_HeaderInFrameworks(t *testing.T) {
	// Exact filename (+100), header extension (+50), frameworks+headers
	// placement (+30), filename prefix (+25) stack before the
	// framework-name bonus is even considered.
	score := Score("/Frameworks/Foundation.framework/Headers/NSWindow.h", "NSWindow")
	assert.Greater(t, score, 100)
}

func TestScore_HeaderBonusIsolated(t *testing.T) {
	header := Score("/docs/NSWindow.h", "NSWindow")
	plain := Score("/docs/NSWindow.txt", "NSWindow")
	assert.Greater(t, header, plain, "a header file must outrank an otherwise-identical non-header")
}

func TestScore_Bonuses(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		query string
		want  int
	}{
		{
			name:  "no relation",
			path:  "/usr/share/man/man1/ls.1",
			query: "NSWindow",
			want:  0,
		},
		{
			name: "exact filename plus extension plus prefix plus substring",
			// 100 + 50 + 25 + 15
			path:  "/docs/NSWindow.h",
			query: "NSWindow",
			want:  190,
		},
		{
			name: "substring only, non-header",
			// 15
			path:  "/docs/MyNSWindowNotes.txt",
			query: "NSWindow",
			want:  15,
		},
		{
			name: "documentation archive",
			// 20 (doccarchive) + 15 (substring) + 25 (prefix) + 100 (filename contains query+".")
			path:  "/docs/SwiftUI.doccarchive",
			query: "SwiftUI",
			want:  160,
		},
		{
			name: "framework name match without filename match",
			// 50 (.h) + 30 (frameworks+headers) + 40 (framework name)
			path:  "/SDK/Frameworks/Combine.framework/Headers/Publisher.h",
			query: "Combine",
			want:  120,
		},
		{
			name: "case insensitive",
			// same as exact filename case
			path:  "/docs/nswindow.H",
			query: "NSWindow",
			want:  190,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.path, tt.query))
		})
	}
}

func TestFrameworkName(t *testing.T) {
	assert.Equal(t, "Foundation", frameworkName("/SDK/Frameworks/Foundation.framework/Headers/NSObject.h"))
	assert.Equal(t, "AppKit", frameworkName("/System/Library/Frameworks/AppKit.framework/Modules/x"))
	assert.Equal(t, "", frameworkName("/usr/include/stdio.h"))
}

func TestFileTypeLabel(t *testing.T) {
	assert.Equal(t, "Objective-C header", fileTypeLabel("/a/NSView.h"))
	assert.Equal(t, "Swift interface", fileTypeLabel("/a/View.swift"))
	assert.Equal(t, "Swift interface", fileTypeLabel("/a/View.swiftinterface"))
	assert.Equal(t, "Documentation", fileTypeLabel("/a/Stuff.doccarchive/data"))
	assert.Equal(t, "File", fileTypeLabel("/a/readme.md"))
}
