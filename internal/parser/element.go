package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/weftui/tmplc/ast"
)

type tagKind int

const (
	tagStart tagKind = iota
	tagEnd
)

var tagNameRe = regexp.MustCompile(`(?i)^</?([a-z][^\t\r\n\f />]*)`)

// classifyTag implements spec.md §3's ElementType classification: slot and
// template are recognized by exact name; anything else containing an
// uppercase letter or a hyphen is a component; otherwise it's a plain
// element.
func classifyTag(name string) ast.ElementType {
	switch name {
	case "slot":
		return ast.ElementTypeSlot
	case "template":
		return ast.ElementTypeTemplate
	}
	if strings.ContainsRune(name, '-') {
		return ast.ElementTypeComponent
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			return ast.ElementTypeComponent
		}
	}
	return ast.ElementTypeElement
}

// startsWithEndTagOpen reports whether src begins with "</" + tag
// (case-insensitive) followed by a tag-name boundary byte or EOF.
func startsWithEndTagOpen(src, tag string) bool {
	if len(tag) == 0 || !strings.HasPrefix(src, "</") {
		return false
	}
	if len(src) < 2+len(tag) {
		return false
	}
	if !equalFoldASCII(src[2:2+len(tag)], tag) {
		return false
	}
	if len(src) == 2+len(tag) {
		return true
	}
	return isAttrBoundary(src[2+len(tag)])
}

type tagResult struct {
	name          string
	namespace     ast.Namespace
	tagType       ast.ElementType
	props         []ast.Node
	isSelfClosing bool
	loc           ast.SourceLocation
}

// parseTag implements spec.md §4.3. Precondition: source starts with "<"
// (start tag) or "</" (end tag).
func (c *context) parseTag(kind tagKind, parentNs ast.Namespace) *tagResult {
	start := c.getCursor()

	m := tagNameRe.FindStringSubmatchIndex(c.source)
	var name string
	if m != nil {
		name = c.source[m[2]:m[3]]
		c.advanceBy(m[1])
	}

	ns := c.opts.GetNamespace(name, parentNs)
	tagType := classifyTag(name)

	c.advanceSpaces()

	var props []ast.Node
	nameSet := map[string]struct{}{}
	for len(c.source) > 0 && c.source[0] != '>' && !strings.HasPrefix(c.source, "/>") {
		if c.source[0] == '/' {
			c.errorAt(ErrUnexpectedSolidusInTag, c.getCursor())
			c.advanceBy(1)
			c.advanceSpaces()
			continue
		}

		attrStart := c.getCursor()
		attr := c.parseAttribute(nameSet)
		if kind == tagEnd {
			c.error(ErrEndTagWithAttributes, c.getSelection(attrStart, nil))
		} else {
			props = append(props, attr)
		}

		if len(c.source) > 0 && !isWhitespace(c.source[0]) && c.source[0] != '/' && c.source[0] != '>' {
			c.errorAt(ErrMissingWhitespaceBetweenAttributes, c.getCursor())
		}
		c.advanceSpaces()
	}

	var isSelfClosing bool
	if len(c.source) == 0 {
		c.errorAt(ErrEOFInTag, c.getCursor())
	} else {
		isSelfClosing = strings.HasPrefix(c.source, "/>")
		if kind == tagEnd && isSelfClosing {
			c.errorAt(ErrEndTagWithTrailingSolidus, c.getCursor())
		}
		if isSelfClosing {
			c.advanceBy(2)
		} else {
			c.advanceBy(1)
		}
	}

	return &tagResult{
		name:          name,
		namespace:     ns,
		tagType:       tagType,
		props:         props,
		isSelfClosing: isSelfClosing,
		loc:           c.getSelection(start, nil),
	}
}

// parseElement implements spec.md §4.3: parse a start tag, recurse into
// children under the tag's text mode, then expect a matching end tag.
func (c *context) parseElement(ancestors []*ast.Element, parentNs ast.Namespace) *ast.Element {
	start := c.getCursor()

	tag := c.parseTag(tagStart, parentNs)
	elem := &ast.Element{
		Namespace:     tag.namespace,
		Tag:           tag.name,
		TagType:       tag.tagType,
		Props:         tag.props,
		IsSelfClosing: tag.isSelfClosing,
	}

	if tag.isSelfClosing || c.opts.IsVoidTag(tag.name) {
		elem.Location = c.getSelection(start, nil)
		return elem
	}

	ancestors = append(ancestors, elem)
	mode := c.opts.GetTextMode(tag.name, tag.namespace)
	elem.Children = c.parseChildren(mode, ancestors)
	ancestors = ancestors[:len(ancestors)-1]

	if startsWithEndTagOpen(c.source, tag.name) {
		c.parseTag(tagEnd, tag.namespace)
	} else {
		c.errorAt(ErrXMissingEndTag, start)
		if strings.EqualFold(tag.name, "script") && len(elem.Children) > 0 {
			if t, ok := elem.Children[0].(*ast.Text); ok && strings.HasPrefix(t.Content, "<!--") {
				c.errorAt(ErrEOFInScriptHTMLCommentLikeText, c.getCursor())
			}
		}
	}

	elem.Location = c.getSelection(start, nil)
	return elem
}
