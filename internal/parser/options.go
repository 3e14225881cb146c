package parser

import "github.com/weftui/tmplc/ast"

// GetNamespace resolves the namespace a tag should be parsed in, given its
// parent's namespace (ast.NamespaceHTML for a root-level tag).
type GetNamespace func(tag string, parent ast.Namespace) ast.Namespace

// GetTextMode selects the text mode used to parse an element's children.
type GetTextMode func(tag string, ns ast.Namespace) ast.TextMode

// IsVoidTag reports whether a tag can never have children or an end tag.
type IsVoidTag func(tag string) bool

// ErrorSink receives every diagnostic the parser produces. Parsing never
// stops because of a reported diagnostic; it only stops at end of source.
type ErrorSink func(d *Diagnostic)

// RawOptions is the caller-facing options record from spec.md §6. Every
// field is optional; New resolves it into a fully-defaulted Options so the
// parser's hot path never has to branch on "is this option set." The
// IgnoreSpaces field is a *bool, following the teacher's own
// optional-bool idiom (html_tags.go's HtmlTagDefinitionOptions.CanSelfClose),
// because its default (true) is not Go's zero value.
type RawOptions struct {
	// Delimiters bound an interpolation expression. Default {"{{", "}}"}.
	Delimiters [2]string
	// IgnoreSpaces drops whitespace-only text nodes at push time. Default true.
	IgnoreSpaces *bool
	// Dev, when true, keeps comment nodes in the tree. Default true: a
	// library build has no bundler stripping comments for it.
	Dev *bool

	GetNamespace GetNamespace
	GetTextMode  GetTextMode
	IsVoidTag    IsVoidTag

	// NamedCharacterReferences maps an entity name (keys carry the
	// trailing `;` when the reference requires one, matching how a
	// caller's own table is keyed) to its decoded replacement text.
	NamedCharacterReferences map[string]string

	OnError ErrorSink
}

// Options is the fully-defaulted configuration record every parser
// function actually reads. Construct one with New.
type Options struct {
	Delimiters               [2]string
	IgnoreSpaces             bool
	Dev                      bool
	GetNamespace             GetNamespace
	GetTextMode              GetTextMode
	IsVoidTag                IsVoidTag
	NamedCharacterReferences map[string]string
	OnError                  ErrorSink

	// maxCRNameLength is precomputed once from NamedCharacterReferences
	// (spec.md §3 Invariant 2) so the entity decoder never recomputes it.
	maxCRNameLength int
}

func defaultGetNamespace(string, ast.Namespace) ast.Namespace { return ast.NamespaceHTML }
func defaultGetTextMode(string, ast.Namespace) ast.TextMode   { return ast.TextModeData }
func defaultIsVoidTag(string) bool                            { return false }

var defaultNamedCharacterReferences = map[string]string{
	"gt;":   ">",
	"lt;":   "<",
	"amp;":  "&",
	"apos;": "'",
	"quot;": "\"",
}

// New resolves RawOptions into a fully-defaulted Options. Pass a zero
// RawOptions to get the spec's defaults outright.
func New(o RawOptions) Options {
	resolved := Options{
		Delimiters:               o.Delimiters,
		GetNamespace:             o.GetNamespace,
		GetTextMode:              o.GetTextMode,
		IsVoidTag:                o.IsVoidTag,
		NamedCharacterReferences: o.NamedCharacterReferences,
		OnError:                  o.OnError,
		IgnoreSpaces:             true,
		Dev:                      true,
	}
	if resolved.Delimiters[0] == "" && resolved.Delimiters[1] == "" {
		resolved.Delimiters = [2]string{"{{", "}}"}
	}
	if o.IgnoreSpaces != nil {
		resolved.IgnoreSpaces = *o.IgnoreSpaces
	}
	if o.Dev != nil {
		resolved.Dev = *o.Dev
	}
	if resolved.GetNamespace == nil {
		resolved.GetNamespace = defaultGetNamespace
	}
	if resolved.GetTextMode == nil {
		resolved.GetTextMode = defaultGetTextMode
	}
	if resolved.IsVoidTag == nil {
		resolved.IsVoidTag = defaultIsVoidTag
	}
	if resolved.NamedCharacterReferences == nil {
		resolved.NamedCharacterReferences = defaultNamedCharacterReferences
	}
	if resolved.OnError == nil {
		resolved.OnError = defaultOnError
	}

	maxLen := 0
	for name := range resolved.NamedCharacterReferences {
		if l := len(name); l > maxLen {
			maxLen = l
		}
	}
	resolved.maxCRNameLength = maxLen

	return resolved
}
