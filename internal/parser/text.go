package parser

import (
	"strings"

	"github.com/weftui/tmplc/ast"
)

// parseText implements spec.md §4.5's parseText: the end index is the
// minimum positive candidate among "next `<`", "next delimiters[0]",
// "next `]]>`" (CDATA only), and the source length.
func (c *context) parseText(mode ast.TextMode) *ast.Text {
	start := c.getCursor()

	end := len(c.source)
	if idx := indexFrom(c.source, "<", 1); idx >= 0 && idx < end {
		end = idx
	}
	if idx := indexFrom(c.source, c.opts.Delimiters[0], 1); idx >= 0 && idx < end {
		end = idx
	}
	if mode == ast.TextModeCData {
		if idx := indexFrom(c.source, "]]>", 1); idx >= 0 && idx < end {
			end = idx
		}
	}

	content := c.parseTextData(end, mode)
	return &ast.Text{
		Content:  content,
		IsEmpty:  strings.TrimSpace(content) == "",
		Location: c.getSelection(start, nil),
	}
}

func indexFrom(s, sub string, from int) int {
	if from >= len(s) {
		return -1
	}
	idx := strings.Index(s[from:], sub)
	if idx < 0 {
		return -1
	}
	return idx + from
}
