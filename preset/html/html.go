// Package html provides a ready-to-use parser configuration for HTML-like
// template source: namespace switching for svg/math, RAWTEXT/RCDATA
// classification for script/style/textarea/title, the standard void
// element set, and an expanded (but not exhaustive) named character
// reference table.
//
// Grounded on the teacher's html_tags.go (void tag set and per-tag
// content-type table) and xml_tags.go (namespace-prefix handling), with
// tag-name resolution done through golang.org/x/net/html/atom rather than
// the teacher's own string-keyed tagDefinitions map.
package html

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/weftui/tmplc/ast"
	"github.com/weftui/tmplc/internal/parser"
)

// Options returns a RawOptions configured for HTML-like template source.
// Callers can further override individual fields (Delimiters, OnError,
// ...) on the returned value before passing it to tmplc.Parse.
func Options() parser.RawOptions {
	return parser.RawOptions{
		GetNamespace:             GetNamespace,
		GetTextMode:              GetTextMode,
		IsVoidTag:                IsVoidTag,
		NamedCharacterReferences: NamedCharacterReferences,
	}
}

func resolveAtom(tag string) atom.Atom {
	return atom.Lookup([]byte(strings.ToLower(tag)))
}

// GetNamespace implements parser.GetNamespace: svg and math switch into
// their own namespace; foreignObject/foreignobject switches back to HTML
// from within an SVG subtree; everything else inherits its parent's
// namespace, matching xml_tags.go's implicit-namespace-prefix model.
func GetNamespace(tag string, parent ast.Namespace) ast.Namespace {
	switch strings.ToLower(tag) {
	case "svg":
		return ast.NamespaceSVG
	case "math":
		return ast.NamespaceMathML
	case "foreignobject":
		if parent == ast.NamespaceSVG {
			return ast.NamespaceHTML
		}
	}
	return parent
}

// GetTextMode implements parser.GetTextMode, following html_tags.go's
// per-tag TagContentType table: script/style are RAW_TEXT, title/textarea
// are ESCAPABLE_RAW_TEXT (RCDATA here), everything else is PARSABLE_DATA.
// The RCDATA/RAWTEXT classification only applies in the HTML namespace;
// an SVG <title> is ordinary parsable content.
func GetTextMode(tag string, ns ast.Namespace) ast.TextMode {
	if ns != ast.NamespaceHTML {
		return ast.TextModeData
	}
	switch resolveAtom(tag) {
	case atom.Script, atom.Style:
		return ast.TextModeRawText
	case atom.Textarea, atom.Title:
		return ast.TextModeRCData
	default:
		return ast.TextModeData
	}
}

var voidAtoms = map[atom.Atom]struct{}{
	atom.Area: {}, atom.Base: {}, atom.Br: {}, atom.Col: {},
	atom.Embed: {}, atom.Hr: {}, atom.Img: {}, atom.Input: {},
	atom.Link: {}, atom.Meta: {}, atom.Param: {}, atom.Source: {},
	atom.Track: {}, atom.Wbr: {},
}

// IsVoidTag implements parser.IsVoidTag against the standard HTML void
// element set from html_tags.go's voidTags list.
func IsVoidTag(tag string) bool {
	_, ok := voidAtoms[resolveAtom(tag)]
	return ok
}
