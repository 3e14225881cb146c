package parser

import (
	"strings"

	"github.com/weftui/tmplc/ast"
)

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return equalFoldASCII(s[:len(prefix)], prefix)
}

// isEnd implements spec.md §4.2's isEnd rules.
func (c *context) isEnd(mode ast.TextMode, ancestors []*ast.Element) bool {
	if len(c.source) == 0 {
		return true
	}
	switch mode {
	case ast.TextModeData:
		if strings.HasPrefix(c.source, "</") {
			for i := len(ancestors) - 1; i >= 0; i-- {
				if startsWithEndTagOpen(c.source, ancestors[i].Tag) {
					return true
				}
			}
		}
	case ast.TextModeRCData, ast.TextModeRawText:
		if len(ancestors) > 0 {
			parent := ancestors[len(ancestors)-1]
			if startsWithEndTagOpen(c.source, parent.Tag) {
				return true
			}
		}
	case ast.TextModeCData:
		if strings.HasPrefix(c.source, "]]>") {
			return true
		}
	}
	return false
}

// parseChildren implements spec.md §4.2: the dispatcher loop that selects
// among interpolation, comment, CDATA, bogus-comment, element, or text.
func (c *context) parseChildren(mode ast.TextMode, ancestors []*ast.Element) []ast.Node {
	var nodes []ast.Node

	for !c.isEnd(mode, ancestors) {
		s := c.source
		var node ast.Node
		var cdataNodes []ast.Node

		switch {
		case (mode == ast.TextModeData || mode == ast.TextModeRCData) && strings.HasPrefix(s, c.opts.Delimiters[0]):
			if interp := c.parseInterpolation(mode); interp != nil {
				node = interp
			}

		case mode == ast.TextModeData && len(s) > 0 && s[0] == '<':
			switch {
			case len(s) == 1:
				c.errorAt(ErrEOFBeforeTagName, c.getNewPosition(c.getCursor(), 1))

			case s[1] == '!':
				switch {
				case strings.HasPrefix(s, "<!--"):
					node = c.parseComment()
				case hasPrefixFold(s, "<!DOCTYPE"):
					node = c.parseBogusComment()
				case strings.HasPrefix(s, "<![CDATA["):
					ns := ast.NamespaceHTML
					if len(ancestors) > 0 {
						ns = ancestors[len(ancestors)-1].Namespace
					}
					if ns != ast.NamespaceHTML {
						cdataNodes = c.parseCDATA(ancestors)
					} else {
						c.errorAt(ErrCDATAInHTMLContent, c.getCursor())
						node = c.parseBogusComment()
					}
				default:
					c.errorAt(ErrIncorrectlyOpenedComment, c.getCursor())
					node = c.parseBogusComment()
				}

			case s[1] == '/':
				switch {
				case len(s) == 2:
					c.errorAt(ErrEOFBeforeTagName, c.getNewPosition(c.getCursor(), 2))
				case s[2] == '>':
					c.errorAt(ErrMissingEndTagName, c.getNewPosition(c.getCursor(), 2))
					c.advanceBy(3)
					continue
				case isAsciiLetter(s[2]):
					c.errorAt(ErrXInvalidEndTag, c.getCursor())
					parentNs := ast.NamespaceHTML
					if len(ancestors) > 0 {
						parentNs = ancestors[len(ancestors)-1].Namespace
					}
					c.parseTag(tagEnd, parentNs)
					continue
				default:
					c.errorAt(ErrInvalidFirstCharacterOfTagName, c.getNewPosition(c.getCursor(), 2))
					node = c.parseBogusComment()
				}

			case isAsciiLetter(s[1]):
				parentNs := ast.NamespaceHTML
				if len(ancestors) > 0 {
					parentNs = ancestors[len(ancestors)-1].Namespace
				}
				node = c.parseElement(ancestors, parentNs)

			case s[1] == '?':
				c.errorAt(ErrUnexpectedQuestionMarkInsteadOfTagName, c.getNewPosition(c.getCursor(), 1))
				node = c.parseBogusComment()

			default:
				c.errorAt(ErrInvalidFirstCharacterOfTagName, c.getNewPosition(c.getCursor(), 1))
			}
		}

		if cdataNodes != nil {
			for _, n := range cdataNodes {
				nodes = c.pushNode(nodes, n)
			}
			continue
		}

		if node == nil {
			node = c.parseText(mode)
		}
		nodes = c.pushNode(nodes, node)
	}

	return nodes
}

// parseCDATA consumes "<![CDATA[" ... "]]>", recursively parsing its
// children in CDATA mode.
func (c *context) parseCDATA(ancestors []*ast.Element) []ast.Node {
	c.advanceBy(len("<![CDATA["))
	nodes := c.parseChildren(ast.TextModeCData, ancestors)
	if strings.HasPrefix(c.source, "]]>") {
		c.advanceBy(3)
	} else {
		c.errorAt(ErrEOFInCDATA, c.getCursor())
	}
	return nodes
}

// pushNode implements spec.md §4.2's push-time filtering and TEXT-sibling
// merge.
func (c *context) pushNode(nodes []ast.Node, node ast.Node) []ast.Node {
	if node == nil {
		return nodes
	}
	if _, ok := node.(*ast.Comment); ok && !c.opts.Dev {
		return nodes
	}
	if t, ok := node.(*ast.Text); ok && c.opts.IgnoreSpaces && t.IsEmpty {
		return nodes
	}

	if len(nodes) > 0 {
		if prev, ok := nodes[len(nodes)-1].(*ast.Text); ok {
			if next, ok2 := node.(*ast.Text); ok2 && prev.Location.End.Offset == next.Location.Start.Offset {
				nodes[len(nodes)-1] = mergeText(prev, next)
				return nodes
			}
		}
	}
	return append(nodes, node)
}

func mergeText(a, b *ast.Text) *ast.Text {
	content := a.Content + b.Content
	return &ast.Text{
		Content: content,
		IsEmpty: strings.TrimSpace(content) == "",
		Location: ast.SourceLocation{
			Start:  a.Location.Start,
			End:    b.Location.End,
			Source: a.Location.Source + b.Location.Source,
		},
	}
}
