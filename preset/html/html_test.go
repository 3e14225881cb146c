package html_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/tmplc"
	"github.com/weftui/tmplc/ast"
	"github.com/weftui/tmplc/preset/html"
)

func parseHTML(t *testing.T, content string) *ast.Root {
	t.Helper()
	opts := html.Options()
	opts.OnError = func(d *tmplc.Diagnostic) { t.Errorf("unexpected diagnostic: %s", d.Error()) }
	return tmplc.Parse(content, opts)
}

func TestVoidTagsHaveNoChildrenOrEndTag(t *testing.T) {
	root := parseHTML(t, "<input type=\"text\">after")
	require.Len(t, root.Children, 2)
	input := root.Children[0].(*ast.Element)
	assert.Equal(t, "input", input.Tag)
	assert.Empty(t, input.Children)
}

func TestScriptIsRawText(t *testing.T) {
	root := parseHTML(t, "<script>const x = a < b && c;</script>")
	script := root.Children[0].(*ast.Element)
	require.Len(t, script.Children, 1)
	text := script.Children[0].(*ast.Text)
	assert.Equal(t, "const x = a < b && c;", text.Content)
}

func TestTextareaIsRCData(t *testing.T) {
	// RCDATA still honors interpolation delimiters and entity decoding;
	// it only suppresses element/tag parsing.
	root := parseHTML(t, "<textarea>{{ greeting }} &amp; done</textarea>")
	ta := root.Children[0].(*ast.Element)
	require.Len(t, ta.Children, 2)

	interp := ta.Children[0].(*ast.Interpolation)
	assert.Equal(t, "greeting", interp.Content.Content)

	text := ta.Children[1].(*ast.Text)
	assert.Equal(t, " & done", text.Content)
}

func TestSVGNamespaceSwitch(t *testing.T) {
	root := parseHTML(t, "<svg><circle></circle></svg>")
	svg := root.Children[0].(*ast.Element)
	assert.Equal(t, ast.NamespaceSVG, svg.Namespace)
	circle := svg.Children[0].(*ast.Element)
	assert.Equal(t, ast.NamespaceSVG, circle.Namespace)
}

func TestExpandedEntityTable(t *testing.T) {
	root := parseHTML(t, "caf&eacute; &mdash; 100&euro;")
	text := root.Children[0].(*ast.Text)
	assert.Equal(t, "café — 100€", text.Content)
}
