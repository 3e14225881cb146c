package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/tmplc/ast"
	"github.com/weftui/tmplc/internal/parser"
)

func collectDiagnostics(t *testing.T, content string, opts parser.RawOptions) (*ast.Root, []*parser.Diagnostic) {
	t.Helper()
	var diags []*parser.Diagnostic
	opts.OnError = func(d *parser.Diagnostic) { diags = append(diags, d) }
	root := parser.Parse(content, opts)
	return root, diags
}

func parseNoErrors(t *testing.T, content string) *ast.Root {
	t.Helper()
	root, diags := collectDiagnostics(t, content, parser.RawOptions{})
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)
	return root
}

func TestParseSimpleElement(t *testing.T) {
	root := parseNoErrors(t, "<div>hello</div>")
	require.Len(t, root.Children, 1)

	el, ok := root.Children[0].(*ast.Element)
	require.True(t, ok)
	assert.Equal(t, "div", el.Tag)
	assert.Equal(t, ast.ElementTypeElement, el.TagType)
	require.Len(t, el.Children, 1)

	text, ok := el.Children[0].(*ast.Text)
	require.True(t, ok)
	assert.Equal(t, "hello", text.Content)
}

func TestParseVoidTagHasNoChildren(t *testing.T) {
	opts := parser.RawOptions{IsVoidTag: func(tag string) bool { return tag == "br" }}
	root, diags := collectDiagnostics(t, "<br>after", opts)
	require.Empty(t, diags)
	require.Len(t, root.Children, 2)

	el, ok := root.Children[0].(*ast.Element)
	require.True(t, ok)
	assert.Equal(t, "br", el.Tag)
	assert.Empty(t, el.Children)

	text, ok := root.Children[1].(*ast.Text)
	require.True(t, ok)
	assert.Equal(t, "after", text.Content)
}

func TestParseSelfClosingTag(t *testing.T) {
	root := parseNoErrors(t, `<my-widget />`)
	require.Len(t, root.Children, 1)
	el := root.Children[0].(*ast.Element)
	assert.True(t, el.IsSelfClosing)
	assert.Equal(t, ast.ElementTypeComponent, el.TagType)
}

func TestComponentClassification(t *testing.T) {
	cases := map[string]ast.ElementType{
		"div":       ast.ElementTypeElement,
		"MyButton":  ast.ElementTypeComponent,
		"my-button": ast.ElementTypeComponent,
		"slot":      ast.ElementTypeSlot,
		"template":  ast.ElementTypeTemplate,
	}
	for tag, want := range cases {
		root := parseNoErrors(t, "<"+tag+"></"+tag+">")
		el := root.Children[0].(*ast.Element)
		assert.Equal(t, want, el.TagType, "tag %q", tag)
	}
}

func TestParseInterpolation(t *testing.T) {
	root := parseNoErrors(t, "{{  user.name  }}")
	require.Len(t, root.Children, 1)
	interp, ok := root.Children[0].(*ast.Interpolation)
	require.True(t, ok)
	assert.Equal(t, "user.name", interp.Content.Content)
	assert.False(t, interp.Content.IsStatic)
}

func TestParseInterpolationCustomDelimiters(t *testing.T) {
	opts := parser.RawOptions{Delimiters: [2]string{"[[", "]]"}}
	root, diags := collectDiagnostics(t, "[[ x ]]", opts)
	require.Empty(t, diags)
	interp := root.Children[0].(*ast.Interpolation)
	assert.Equal(t, "x", interp.Content.Content)
}

func TestParseComment(t *testing.T) {
	dev := true
	root, diags := collectDiagnostics(t, "<!-- note -->", parser.RawOptions{Dev: &dev})
	require.Empty(t, diags)
	require.Len(t, root.Children, 1)
	c, ok := root.Children[0].(*ast.Comment)
	require.True(t, ok)
	assert.Equal(t, " note ", c.Content)
}

func TestCommentDroppedWhenNotDev(t *testing.T) {
	dev := false
	root, diags := collectDiagnostics(t, "a<!-- note -->b", parser.RawOptions{Dev: &dev})
	require.Empty(t, diags)
	require.Len(t, root.Children, 2)
	text, ok := root.Children[0].(*ast.Text)
	require.True(t, ok)
	assert.Equal(t, "a", text.Content)
	text, ok = root.Children[1].(*ast.Text)
	require.True(t, ok)
	assert.Equal(t, "b", text.Content)
}

// Text nodes merge only when their spans touch; a dropped comment leaves a
// gap between them, so the two runs stay separate.
func TestTextNotMergedAcrossDroppedComment(t *testing.T) {
	dev := false
	root, diags := collectDiagnostics(t, "foo<!--x-->bar", parser.RawOptions{Dev: &dev})
	require.Empty(t, diags)
	require.Len(t, root.Children, 2)
	text := root.Children[0].(*ast.Text)
	assert.Equal(t, "foo", text.Content)
	text = root.Children[1].(*ast.Text)
	assert.Equal(t, "bar", text.Content)
}

func TestWhitespaceOnlyTextDroppedByDefault(t *testing.T) {
	root := parseNoErrors(t, "<div>   </div>")
	el := root.Children[0].(*ast.Element)
	assert.Empty(t, el.Children)
}

func TestWhitespaceOnlyTextKeptWhenNotIgnored(t *testing.T) {
	ignore := false
	opts := parser.RawOptions{IgnoreSpaces: &ignore}
	root, diags := collectDiagnostics(t, "<div>   </div>", opts)
	require.Empty(t, diags)
	el := root.Children[0].(*ast.Element)
	require.Len(t, el.Children, 1)
	text := el.Children[0].(*ast.Text)
	assert.True(t, text.IsEmpty)
	assert.Equal(t, "   ", text.Content)
}

func TestParseAttributesAndDirectives(t *testing.T) {
	root := parseNoErrors(t, `<input id="name" :value="user.name" @click="onClick" v-if="visible" disabled />`)
	el := root.Children[0].(*ast.Element)
	require.Len(t, el.Props, 5)

	attr, ok := el.Props[0].(*ast.Attribute)
	require.True(t, ok)
	assert.Equal(t, "id", attr.Name)
	assert.Equal(t, "name", attr.Value.Content)

	bind, ok := el.Props[1].(*ast.Directive)
	require.True(t, ok)
	assert.Equal(t, "bind", bind.Name)
	assert.Equal(t, "value", bind.Arg.Content)
	assert.Equal(t, "user.name", bind.Exp.Content)

	on, ok := el.Props[2].(*ast.Directive)
	require.True(t, ok)
	assert.Equal(t, "on", on.Name)
	assert.Equal(t, "click", on.Arg.Content)

	vif, ok := el.Props[3].(*ast.Directive)
	require.True(t, ok)
	assert.Equal(t, "if", vif.Name)
	assert.Nil(t, vif.Arg)
	assert.Equal(t, "visible", vif.Exp.Content)

	boolAttr, ok := el.Props[4].(*ast.Attribute)
	require.True(t, ok)
	assert.Equal(t, "disabled", boolAttr.Name)
	assert.Nil(t, boolAttr.Value)
}

func TestDirectiveWithModifiers(t *testing.T) {
	root := parseNoErrors(t, `<form @submit.prevent.stop="save"></form>`)
	el := root.Children[0].(*ast.Element)
	dir := el.Props[0].(*ast.Directive)
	assert.Equal(t, "on", dir.Name)
	assert.Equal(t, "submit", dir.Arg.Content)
	assert.Equal(t, []string{"prevent", "stop"}, dir.Modifiers)
}

func TestDirectiveDynamicArgument(t *testing.T) {
	root := parseNoErrors(t, `<div :[attrName]="val"></div>`)
	el := root.Children[0].(*ast.Element)
	dir := el.Props[0].(*ast.Directive)
	assert.Equal(t, "bind", dir.Name)
	assert.Equal(t, "attrName", dir.Arg.Content)
	assert.False(t, dir.Arg.IsStatic)
}

func TestDuplicateAttributeDiagnostic(t *testing.T) {
	_, diags := collectDiagnostics(t, `<div id="a" id="b"></div>`, parser.RawOptions{})
	require.Len(t, diags, 1)
	assert.Equal(t, parser.ErrDuplicateAttribute, diags[0].Code)
}

func TestMissingEndTagDiagnostic(t *testing.T) {
	_, diags := collectDiagnostics(t, `<div><span></div>`, parser.RawOptions{})
	require.Len(t, diags, 1)
	assert.Equal(t, parser.ErrXMissingEndTag, diags[0].Code)
}

func TestEntityDecodingInText(t *testing.T) {
	root := parseNoErrors(t, "a &amp; b &lt; c")
	text := root.Children[0].(*ast.Text)
	assert.Equal(t, "a & b < c", text.Content)
}

func TestEntityDecodingNumericReference(t *testing.T) {
	root := parseNoErrors(t, "&#65;&#x42;")
	text := root.Children[0].(*ast.Text)
	assert.Equal(t, "AB", text.Content)
}

func TestNullCharacterReferenceDiagnostic(t *testing.T) {
	_, diags := collectDiagnostics(t, "&#0;", parser.RawOptions{})
	require.Len(t, diags, 1)
	assert.Equal(t, parser.ErrNullCharacterReference, diags[0].Code)
}

func TestUnknownNamedReferenceDiagnosticUnconditional(t *testing.T) {
	root, diags := collectDiagnostics(t, "a &foo b", parser.RawOptions{})
	text := root.Children[0].(*ast.Text)
	assert.Equal(t, "a &foo b", text.Content)
	require.Len(t, diags, 1)
	assert.Equal(t, parser.ErrUnknownNamedCharacterReference, diags[0].Code)
}

func TestQuotedAttributeValueDoesNotDecodeHistorically(t *testing.T) {
	root, diags := collectDiagnostics(t, `<a href="?a=1&b=2">x</a>`, parser.RawOptions{})
	el := root.Children[0].(*ast.Element)
	attr := el.Props[0].(*ast.Attribute)
	assert.Equal(t, "?a=1&b=2", attr.Value.Content)
	require.Len(t, diags, 1)
	assert.Equal(t, parser.ErrUnknownNamedCharacterReference, diags[0].Code)
}

func TestRawTextModeDoesNotParseChildren(t *testing.T) {
	opts := parser.RawOptions{
		GetTextMode: func(tag string, ns ast.Namespace) ast.TextMode {
			if tag == "script" {
				return ast.TextModeRawText
			}
			return ast.TextModeData
		},
	}
	root, diags := collectDiagnostics(t, "<script>if (a < b) {}</script>", opts)
	require.Empty(t, diags)
	script := root.Children[0].(*ast.Element)
	require.Len(t, script.Children, 1)
	text := script.Children[0].(*ast.Text)
	assert.Equal(t, "if (a < b) {}", text.Content)
}

func TestCDataOutsideHTMLNamespace(t *testing.T) {
	opts := parser.RawOptions{
		GetNamespace: func(tag string, parent ast.Namespace) ast.Namespace {
			if tag == "svg" {
				return ast.NamespaceSVG
			}
			return parent
		},
	}
	root, diags := collectDiagnostics(t, "<svg><![CDATA[<not-a-tag>]]></svg>", opts)
	require.Empty(t, diags)
	svg := root.Children[0].(*ast.Element)
	require.Len(t, svg.Children, 1)
	text := svg.Children[0].(*ast.Text)
	assert.Equal(t, "<not-a-tag>", text.Content)
}

func TestOffsetsAreMonotonicAndConsistent(t *testing.T) {
	root := parseNoErrors(t, "<div>\n  hello {{ x }}\n</div>")
	var walk func(n ast.Node)
	var lastOffset uint32
	walk = func(n ast.Node) {
		loc := n.Loc()
		require.GreaterOrEqual(t, loc.End.Offset, loc.Start.Offset)
		require.GreaterOrEqual(t, loc.Start.Offset, lastOffset)
		lastOffset = loc.Start.Offset
		if el, ok := n.(*ast.Element); ok {
			for _, child := range el.Children {
				walk(child)
			}
		}
	}
	for _, n := range root.Children {
		walk(n)
	}
}

func TestUnterminatedInterpolationDiagnostic(t *testing.T) {
	_, diags := collectDiagnostics(t, "{{ x", parser.RawOptions{})
	require.Len(t, diags, 1)
	assert.Equal(t, parser.ErrXMissingInterpolationEnd, diags[0].Code)
}

// TestParseIsDeterministic checks spec.md §8's determinism property: the
// same source parsed twice with the same options produces structurally
// identical trees, not just trees that happen to look alike under a
// shallow check.
func TestParseIsDeterministic(t *testing.T) {
	const src = `<section id="main"><h1>{{ title }}</h1><!-- note --><p v-if="visible" :class="cls">a &amp; b</p></section>`

	first := parseNoErrors(t, src)
	second := parseNoErrors(t, src)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parse is not deterministic:\n%s", diff)
	}
}
