package parser

import (
	"strings"

	"github.com/weftui/tmplc/ast"
)

// parseInterpolation implements spec.md §4.6: consume a
// delimiters-bounded expression, trimming whitespace while preserving
// inner source locations for diagnostics raised on the trimmed content.
func (c *context) parseInterpolation(mode ast.TextMode) *ast.Interpolation {
	open, close := c.opts.Delimiters[0], c.opts.Delimiters[1]

	outerStart := c.getCursor()
	closeIdx := indexFrom(c.source, close, len(open))
	if closeIdx < 0 {
		c.errorAt(ErrXMissingInterpolationEnd, outerStart)
		return nil
	}

	rawLen := closeIdx - len(open)
	c.advanceBy(len(open))
	innerStart := c.getCursor()

	preTrim := c.parseTextData(rawLen, mode)
	content := strings.TrimSpace(preTrim)
	startOffset := strings.Index(preTrim, content)
	if startOffset < 0 {
		startOffset = 0
	}
	endOffset := rawLen - (len(preTrim) - len(content) - startOffset)

	start := c.getNewPosition(innerStart, startOffset)
	end := c.getNewPosition(innerStart, endOffset)

	c.advanceBy(len(close))

	exp := &ast.SimpleExpression{
		Content:  content,
		IsStatic: false,
		Location: ast.SourceLocation{Start: start, End: end, Source: c.original[start.Offset:end.Offset]},
	}
	return &ast.Interpolation{
		Content:  exp,
		Location: c.getSelection(outerStart, nil),
	}
}
