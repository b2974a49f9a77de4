// Package convert implements the text-to-HTML line break conversion.
// It provides the content transform, the destination path derivation, and a
// staged processing engine that ties them together with validation, plus a
// file-level converter that handles reading, backups, and atomic writes.
package convert

import (
	"bytes"
	"io"
	"strings"
)

// Marker is the literal token inserted before each newline so that line
// breaks survive rendering in a browser.
const Marker = "<br>"

const (
	srcToken = ".txt"
	dstToken = ".html"
)

var (
	newline       = []byte("\n")
	markedNewline = []byte(Marker + "\n")
)

// InsertLineBreaks produces the converted content: every newline character
// in content is replaced with the Marker token immediately followed by the
// preserved newline. No other bytes are altered, so any encoding whose
// newline is 0x0A round-trips unchanged (CRLF input yields "\r<br>\n").
// Content without newlines is returned as-is.
func InsertLineBreaks(content []byte) []byte {
	if !bytes.Contains(content, newline) {
		return content
	}
	return bytes.ReplaceAll(content, newline, markedNewline)
}

// CountLineBreaks returns the number of newline characters in content,
// which equals the number of markers InsertLineBreaks will insert.
func CountLineBreaks(content []byte) int {
	return bytes.Count(content, newline)
}

// DeriveDestPath computes the destination path from the source path by
// replacing the first occurrence of ".txt" with ".html".
//
// This is a deliberate textual replace-first operation, not an
// extension-aware one: ".txt" is matched anywhere in the path, including
// mid-name ("a.txt.txt" becomes "a.html.txt"), and a path without the
// substring is returned unchanged, which makes the converter overwrite its
// own input.
func DeriveDestPath(path string) string {
	index := strings.Index(path, srcToken)
	if index == -1 {
		return path
	}
	return path[:index] + dstToken + path[index+len(srcToken):]
}

// TransformReader applies the line break conversion to content from an
// io.Reader. It returns the converted content and the number of markers
// inserted, providing a path-free interface for callers that already hold
// the content.
func TransformReader(reader io.Reader) ([]byte, int, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, err
	}
	return InsertLineBreaks(content), CountLineBreaks(content), nil
}
