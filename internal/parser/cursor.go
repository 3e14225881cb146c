package parser

import "github.com/weftui/tmplc/ast"

// context is the parser's single mutable state, spec.md §3's
// ParserContext: the fully-defaulted options, the immutable original
// source, the live tail view of it, and the offset/line/column cursor.
// One context is created per Parse call and discarded when the root is
// returned — it is never shared across calls (spec.md §3 Ownership).
//
// Grounded on the teacher's PlainCharacterCursor / CursorState, but
// byte-offset based rather than rune-pointer based: Go strings are UTF-8
// byte sequences, and advanceBy's precondition ("n bytes of the current
// source") is naturally a byte count here.
type context struct {
	opts     Options
	original string
	source   string
	offset   uint32
	line     uint32
	column   uint32
}

func newContext(source string, opts Options) *context {
	return &context{
		opts:     opts,
		original: source,
		source:   source,
		offset:   0,
		line:     1,
		column:   1,
	}
}

// getCursor snapshots the current position.
func (c *context) getCursor() ast.Position {
	return ast.Position{Offset: c.offset, Line: c.line, Column: c.column}
}

// advanceBy walks the next n bytes of the current source, updating
// line/column (a '\n' increments line and resets column to 1; any other
// byte advances column by one) and replacing source with source[n:].
// Precondition: n <= len(c.source).
func (c *context) advanceBy(n int) {
	for i := 0; i < n; i++ {
		if c.source[i] == '\n' {
			c.line++
			c.column = 1
		} else {
			c.column++
		}
	}
	c.offset += uint32(n)
	c.source = c.source[n:]
}

// advanceSpaces consumes the maximal prefix matching [\t\r\n\f ]+.
func (c *context) advanceSpaces() {
	n := 0
	for n < len(c.source) && isWhitespace(c.source[n]) {
		n++
	}
	if n > 0 {
		c.advanceBy(n)
	}
}

// getSelection snapshots [start, end) as a SourceLocation; end defaults
// to the current cursor position when nil.
func (c *context) getSelection(start ast.Position, end *ast.Position) ast.SourceLocation {
	e := c.getCursor()
	if end != nil {
		e = *end
	}
	return ast.SourceLocation{
		Start:  start,
		End:    e,
		Source: c.original[start.Offset:e.Offset],
	}
}

// getNewPosition returns start advanced by n bytes of
// originalSource[start.Offset:start.Offset+n], without mutating the
// context. Used to locate sub-tokens inside an attribute name (the
// directive argument's own span, for instance).
func (c *context) getNewPosition(start ast.Position, n int) ast.Position {
	line, col := start.Line, start.Column
	base := int(start.Offset)
	for i := 0; i < n; i++ {
		if c.original[base+i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return ast.Position{Offset: start.Offset + uint32(n), Line: line, Column: col}
}
