package parser

import (
	"regexp"
	"strings"

	"github.com/weftui/tmplc/ast"
)

func isAttrBoundary(b byte) bool {
	switch b {
	case '\t', '\r', '\n', '\f', ' ', '/', '>':
		return true
	default:
		return false
	}
}

// attrNameSpan matches spec.md §4.4's
// ^[^\t\r\n\f />][^\t\r\n\f />=]* — note '=' is allowed as the first
// byte (it only terminates the *rest* of the name), which is what makes
// the leading-'=' error detectable below.
func attrNameSpan(s string) int {
	if len(s) == 0 || isAttrBoundary(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && !isAttrBoundary(s[i]) && s[i] != '=' {
		i++
	}
	return i
}

// parseAttribute implements spec.md §4.4. nameSet tracks attribute names
// already seen on the current tag for duplicate detection.
func (c *context) parseAttribute(nameSet map[string]struct{}) ast.Node {
	start := c.getCursor()

	nameLen := attrNameSpan(c.source)
	name := c.source[:nameLen]

	if _, dup := nameSet[name]; dup {
		c.error(ErrDuplicateAttribute, c.getSelection(start, nil))
	}
	nameSet[name] = struct{}{}

	if len(name) > 0 && name[0] == '=' {
		c.errorAt(ErrUnexpectedEqualsSignBeforeAttributeName, start)
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '"' || name[i] == '\'' || name[i] == '<' {
			c.error(ErrUnexpectedCharacterInAttributeName, c.pointLoc(start, i, 1))
		}
	}

	c.advanceBy(nameLen)

	var value *attrValue
	if hasAttrEquals(c.source) {
		c.advanceSpaces()
		c.advanceBy(1) // '='
		c.advanceSpaces()
		value = c.parseAttributeValue()
		if value == nil {
			c.errorAt(ErrMissingAttributeValue, c.getCursor())
		}
	}

	loc := c.getSelection(start, nil)

	if directivePrefixRe.MatchString(name) {
		return c.buildDirective(name, start, value, loc)
	}
	return c.buildAttribute(name, value, loc)
}

// hasAttrEquals matches spec's ^[\t\r\n\f ]*= lookahead without consuming.
func hasAttrEquals(s string) bool {
	i := 0
	for i < len(s) && isWhitespace(s[i]) {
		i++
	}
	return i < len(s) && s[i] == '='
}

type attrValue struct {
	content  string
	isQuoted bool
	loc      ast.SourceLocation
}

var unquotedValueStopRe = []byte{'"', '\'', '<', '=', '`'}

// parseAttributeValue implements spec.md §4.4's value parser.
func (c *context) parseAttributeValue() *attrValue {
	start := c.getCursor()

	if len(c.source) > 0 && (c.source[0] == '"' || c.source[0] == '\'') {
		quote := c.source[0]
		c.advanceBy(1)
		endIdx := strings.IndexByte(c.source, quote)
		var content string
		if endIdx < 0 {
			content = c.parseTextData(len(c.source), ast.TextModeAttributeValue)
		} else {
			content = c.parseTextData(endIdx, ast.TextModeAttributeValue)
			c.advanceBy(1)
		}
		return &attrValue{content: content, isQuoted: true, loc: c.getSelection(start, nil)}
	}

	matchLen := 0
	for matchLen < len(c.source) && !isWhitespace(c.source[matchLen]) && c.source[matchLen] != '>' {
		matchLen++
	}
	if matchLen == 0 {
		return nil
	}
	raw := c.source[:matchLen]
	for i := 0; i < len(raw); i++ {
		for _, stop := range unquotedValueStopRe {
			if raw[i] == stop {
				c.error(ErrUnexpectedCharacterInUnquotedAttributeValue, c.pointLoc(start, i, 1))
			}
		}
	}
	content := c.parseTextData(matchLen, ast.TextModeAttributeValue)
	return &attrValue{content: content, isQuoted: false, loc: c.getSelection(start, nil)}
}

func (c *context) buildAttribute(name string, value *attrValue, loc ast.SourceLocation) *ast.Attribute {
	var v *ast.Text
	if value != nil {
		v = &ast.Text{
			Content:  value.content,
			IsEmpty:  strings.TrimSpace(value.content) == "",
			Location: value.loc,
		}
	}
	return &ast.Attribute{Name: name, Value: v, Location: loc}
}

var (
	directivePrefixRe = regexp.MustCompile(`^(v-|:|@|#)`)
	directiveDecompRe = regexp.MustCompile(`^(?:v-([a-zA-Z0-9-]+))?(?:(?::|^@|^#)([^.]+))?(.+)?$`)
)

// buildDirective implements the directive-detection half of spec.md
// §4.4: decompose the attribute name into (directiveName, arg,
// modifierTail), then resolve each into a Directive node.
func (c *context) buildDirective(name string, nameStart ast.Position, value *attrValue, loc ast.SourceLocation) *ast.Directive {
	m := directiveDecompRe.FindStringSubmatch(name)
	var rawName, rawArg, modTail string
	if m != nil {
		rawName, rawArg, modTail = m[1], m[2], m[3]
	}

	dirName := rawName
	if dirName == "" {
		switch {
		case strings.HasPrefix(name, ":"):
			dirName = "bind"
		case strings.HasPrefix(name, "@"):
			dirName = "on"
		case strings.HasPrefix(name, "#"):
			dirName = "slot"
		}
	}

	var arg *ast.SimpleExpression
	if rawArg != "" {
		prefixLen := strings.Index(name, rawArg)
		if prefixLen < 0 {
			prefixLen = 0
		}
		argContent := rawArg
		isStatic := true
		argLen := len(rawArg)
		if strings.HasPrefix(rawArg, "[") {
			isStatic = false
			if strings.HasSuffix(rawArg, "]") {
				argContent = rawArg[1 : len(rawArg)-1]
			} else {
				c.error(ErrXMissingDynamicDirectiveArgumentEnd, loc)
				argContent = rawArg[1:]
			}
		}
		argStart := c.getNewPosition(nameStart, prefixLen)
		argEnd := c.getNewPosition(nameStart, prefixLen+argLen)
		contentStart := argStart
		contentEnd := argEnd
		if !isStatic {
			contentStart = c.getNewPosition(nameStart, prefixLen+1)
			if strings.HasSuffix(rawArg, "]") {
				contentEnd = c.getNewPosition(nameStart, prefixLen+argLen-1)
			} else {
				contentEnd = argEnd
			}
		}
		arg = &ast.SimpleExpression{
			Content:  argContent,
			IsStatic: isStatic,
			Location: ast.SourceLocation{Start: contentStart, End: contentEnd, Source: c.original[contentStart.Offset:contentEnd.Offset]},
		}
	}

	var modifiers []string
	if modTail != "" {
		modifiers = strings.Split(strings.TrimPrefix(modTail, "."), ".")
	}

	var exp *ast.SimpleExpression
	if value != nil {
		expLoc := value.loc
		if value.isQuoted {
			// Tighten the span to exclude the surrounding quotes.
			s := c.getNewPosition(expLoc.Start, 1)
			e := c.getNewPosition(s, len(value.content))
			expLoc = ast.SourceLocation{Start: s, End: e, Source: c.original[s.Offset:e.Offset]}
		}
		exp = &ast.SimpleExpression{Content: value.content, IsStatic: false, Location: expLoc}
	}

	return &ast.Directive{
		Name:      dirName,
		Exp:       exp,
		Arg:       arg,
		Modifiers: modifiers,
		Location:  loc,
	}
}
