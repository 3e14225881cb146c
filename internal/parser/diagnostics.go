package parser

import "github.com/weftui/tmplc/ast"

// error hands a diagnostic to the configured sink. Per spec.md §7,
// parsing always continues — the sink is never given a chance to abort.
func (c *context) error(code ErrorCode, loc ast.SourceLocation) {
	c.opts.OnError(&Diagnostic{Code: code, Loc: loc})
}

// errorAt is a convenience for diagnostics with a zero-width location at
// the given position.
func (c *context) errorAt(code ErrorCode, at ast.Position) {
	c.error(code, ast.SourceLocation{Start: at, End: at})
}
