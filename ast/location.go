// Package ast defines the node types and source-location bookkeeping
// produced by the template parser.
package ast

import "fmt"

// Position is a single point in a source file: a byte offset plus the
// 1-based line and column it corresponds to.
type Position struct {
	Offset uint32
	Line   uint32
	Column uint32
}

// String renders the position the way diagnostics print it: "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceLocation is a half-open [Start, End) span of the original input,
// together with the raw substring it covers.
type SourceLocation struct {
	Start  Position
	End    Position
	Source string
}

// Context renders up to maxChars characters of source on either side of
// the location's start, stopping early at maxLines newlines. It backs the
// caret-style excerpts diagnostics print.
func Context(original string, at Position, maxChars, maxLines int) (before, after string) {
	offset := int(at.Offset)
	if offset > len(original) {
		offset = len(original)
	}

	start := offset
	chars, lines := 0, 0
	for chars < maxChars && start > 0 {
		start--
		chars++
		if original[start] == '\n' {
			lines++
			if lines == maxLines {
				break
			}
		}
	}

	end := offset
	chars, lines = 0, 0
	for chars < maxChars && end < len(original) {
		if original[end] == '\n' {
			lines++
			if lines == maxLines {
				break
			}
		}
		end++
		chars++
	}

	return original[start:offset], original[offset:end]
}
