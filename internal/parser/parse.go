// Package parser implements the single-pass recursive-descent template
// parser: source text in, an ast.Root out, diagnostics routed to a sink
// along the way.
package parser

import "github.com/weftui/tmplc/ast"

// Parse implements spec.md §4.1: construct a context over content, parse
// its children in DATA mode with an empty ancestor stack, and wrap the
// result in a Root.
func Parse(content string, raw RawOptions) *ast.Root {
	opts := New(raw)
	c := newContext(content, opts)

	start := c.getCursor()
	children := c.parseChildren(ast.TextModeData, nil)

	return &ast.Root{
		Children: children,
		Location: c.getSelection(start, nil),
	}
}
