package parser

import (
	"regexp"
	"strings"

	"github.com/weftui/tmplc/ast"
)

var commentEndRe = regexp.MustCompile(`--(!)?>`)

// parseComment implements spec.md §4.7. Precondition: source starts with
// "<!--".
func (c *context) parseComment() *ast.Comment {
	start := c.getCursor()

	match := commentEndRe.FindStringSubmatchIndex(c.source)
	var content string
	if match == nil {
		content = c.source[4:]
		c.advanceBy(len(c.source))
		c.errorAt(ErrEOFInComment, c.getCursor())
	} else {
		matchIndex := match[0]
		matchEnd := match[1]
		hasBang := match[2] != -1

		if matchIndex <= 3 {
			c.errorAt(ErrAbruptClosingOfEmptyComment, start)
		}
		if hasBang {
			c.errorAt(ErrIncorrectlyClosedComment, start)
		}

		if matchIndex > 4 {
			content = c.source[4:matchIndex]
		}

		s := c.source[:matchIndex]
		cursor := 0
		for {
			// Search from one past the bytes already advanced, so the
			// comment's own opening "<!--" is never counted as nested.
			nestedIndex := indexFrom(s, "<!--", cursor+1)
			if nestedIndex < 0 {
				break
			}
			c.advanceBy(nestedIndex - cursor + 1)
			if nestedIndex+4 < len(s) {
				c.errorAt(ErrNestedComment, c.getCursor())
			}
			cursor = nestedIndex + 1
		}
		c.advanceBy(matchEnd - cursor)
	}

	return &ast.Comment{Content: content, Location: c.getSelection(start, nil)}
}

// parseBogusComment implements spec.md §4.7's recovery form: content
// starts at offset 1 if the byte after '<' is '?', else offset 2,
// reading until '>' or EOF.
func (c *context) parseBogusComment() *ast.Comment {
	start := c.getCursor()

	contentStart := 2
	if len(c.source) > 1 && c.source[1] == '?' {
		contentStart = 1
	}

	closeIdx := strings.IndexByte(c.source, '>')
	var content string
	if closeIdx < 0 {
		content = c.source[contentStart:]
		c.advanceBy(len(c.source))
	} else {
		content = c.source[contentStart:closeIdx]
		c.advanceBy(closeIdx + 1)
	}

	return &ast.Comment{Content: content, Location: c.getSelection(start, nil)}
}
