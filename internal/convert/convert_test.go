package convert

import (
	"bytes"
	"strings"
	"testing"
)

func TestInsertLineBreaks(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "two lines with trailing newline",
			content:  "hello\nworld\n",
			expected: "hello<br>\nworld<br>\n",
		},
		{
			name:     "no trailing newline",
			content:  "hello\nworld",
			expected: "hello<br>\nworld",
		},
		{
			name:     "no newlines",
			content:  "single line",
			expected: "single line",
		},
		{
			name:     "empty content",
			content:  "",
			expected: "",
		},
		{
			name:     "only newlines",
			content:  "\n\n\n",
			expected: "<br>\n<br>\n<br>\n",
		},
		{
			name:     "crlf preserves carriage return",
			content:  "hello\r\nworld",
			expected: "hello\r<br>\nworld",
		},
		{
			name:     "existing markup untouched",
			content:  "a <br> b\nc & d\n",
			expected: "a <br> b<br>\nc & d<br>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InsertLineBreaks([]byte(tt.content))
			if string(result) != tt.expected {
				t.Errorf("InsertLineBreaks(%q) = %q, expected %q", tt.content, result, tt.expected)
			}
		})
	}
}

func TestInsertLineBreaksMarkerCount(t *testing.T) {
	// Every newline gets exactly one marker, each immediately before a
	// newline, and nothing else changes.
	contents := []string{
		"hello\nworld\n",
		"",
		"no newline here",
		"a\nb\nc\nd",
		strings.Repeat("line\n", 100),
	}

	for _, content := range contents {
		newlines := strings.Count(content, "\n")
		result := InsertLineBreaks([]byte(content))

		markers := bytes.Count(result, []byte(Marker))
		if markers != newlines {
			t.Errorf("content %q: expected %d markers, got %d", content, newlines, markers)
		}

		markedPairs := bytes.Count(result, []byte(Marker+"\n"))
		if markedPairs != newlines {
			t.Errorf("content %q: expected every marker to precede a newline, %d of %d do",
				content, markedPairs, newlines)
		}

		restored := bytes.ReplaceAll(result, []byte(Marker+"\n"), []byte("\n"))
		if string(restored) != content {
			t.Errorf("content %q: output altered bytes beyond marker insertion: %q", content, restored)
		}
	}
}

func TestCountLineBreaks(t *testing.T) {
	tests := []struct {
		content  string
		expected int
	}{
		{"hello\nworld\n", 2},
		{"", 0},
		{"no newline", 0},
		{"\n", 1},
		{"a\r\nb\r\n", 2},
	}

	for _, tt := range tests {
		if got := CountLineBreaks([]byte(tt.content)); got != tt.expected {
			t.Errorf("CountLineBreaks(%q) = %d, expected %d", tt.content, got, tt.expected)
		}
	}
}

func TestDeriveDestPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "simple extension",
			path:     "notes.txt",
			expected: "notes.html",
		},
		{
			name:     "only first occurrence replaced",
			path:     "a.txt.txt",
			expected: "a.html.txt",
		},
		{
			name:     "no txt substring returns path unchanged",
			path:     "readme.md",
			expected: "readme.md",
		},
		{
			name:     "substring mid-name",
			path:     "my.txtfile",
			expected: "my.htmlfile",
		},
		{
			name:     "substring in directory component",
			path:     "data.txt/notes.txt",
			expected: "data.html/notes.txt",
		},
		{
			name:     "relative path with directory",
			path:     "docs/notes.txt",
			expected: "docs/notes.html",
		},
		{
			name:     "empty path",
			path:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveDestPath(tt.path); got != tt.expected {
				t.Errorf("DeriveDestPath(%q) = %q, expected %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestTransformReader(t *testing.T) {
	reader := strings.NewReader("first\nsecond\n")

	content, lineBreaks, err := TransformReader(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(content) != "first<br>\nsecond<br>\n" {
		t.Errorf("unexpected content: %q", content)
	}

	if lineBreaks != 2 {
		t.Errorf("expected 2 line breaks, got %d", lineBreaks)
	}
}
