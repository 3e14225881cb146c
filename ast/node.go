package ast

// Namespace identifies the markup vocabulary an element belongs to.
type Namespace int

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
	NamespaceMathML
)

func (n Namespace) String() string {
	switch n {
	case NamespaceSVG:
		return "svg"
	case NamespaceMathML:
		return "mathml"
	default:
		return "html"
	}
}

// TextMode controls how the children parser and the text/entity decoder
// treat the bytes that follow: whether child elements are recognized,
// whether entities are decoded, and what terminates a text run.
type TextMode int

const (
	TextModeData TextMode = iota
	TextModeRCData
	TextModeRawText
	TextModeCData
	TextModeAttributeValue
)

// ElementType classifies a tag syntactically, per the rule in spec.md §3:
// "slot" is a Slot, "template" is a Template, an uppercase letter or a
// hyphen in the name (outside those two) makes it a Component, otherwise
// it's a plain Element.
type ElementType int

const (
	ElementTypeElement ElementType = iota
	ElementTypeComponent
	ElementTypeSlot
	ElementTypeTemplate
)

// Node is the sealed set of AST node kinds. Implementations are
// distinguished by type switch, matching the teacher's own dispatch style
// (ml_parser.Node consumed via type switch in its code generator).
type Node interface {
	Loc() SourceLocation
	astNode()
}

// Root is the tree returned by Parse. Helpers/Components/Directives/Hoists
// are populated by the out-of-scope transform pipeline; the parser leaves
// them nil/empty and only fills Children and Loc.
type Root struct {
	Children     []Node
	Helpers      []string
	Components   []string
	Directives   []string
	Hoists       []Node
	CodegenNode  Node
	Location     SourceLocation
}

func (r *Root) Loc() SourceLocation { return r.Location }
func (*Root) astNode()              {}

// Element is a tag and everything between its start and end tags (or,
// for a void/self-closing tag, nothing).
type Element struct {
	Namespace     Namespace
	Tag           string
	TagType       ElementType
	Props         []Node // Attribute or Directive
	IsSelfClosing bool
	Children      []Node
	Location      SourceLocation
	CodegenNode   Node
}

func (e *Element) Loc() SourceLocation { return e.Location }
func (*Element) astNode()              {}

// Text is a run of character data.
type Text struct {
	Content  string
	IsEmpty  bool
	Location SourceLocation
}

func (t *Text) Loc() SourceLocation { return t.Location }
func (*Text) astNode()              {}

// Comment is an HTML comment (or a bogus-comment recovery node).
type Comment struct {
	Content  string
	Location SourceLocation
}

func (c *Comment) Loc() SourceLocation { return c.Location }
func (*Comment) astNode()              {}

// Interpolation is a `{{ expr }}`-delimited (configurable delimiters)
// expression embedded in text.
type Interpolation struct {
	Content  *SimpleExpression
	Location SourceLocation
}

func (i *Interpolation) Loc() SourceLocation { return i.Location }
func (*Interpolation) astNode()              {}

// SimpleExpression wraps a raw expression string with its own precise
// location, independent of whatever surrounds it (an interpolation, a
// directive's exp/arg, or a quoted attribute value).
type SimpleExpression struct {
	Content  string
	IsStatic bool
	Location SourceLocation
}

func (s *SimpleExpression) Loc() SourceLocation { return s.Location }
func (*SimpleExpression) astNode()              {}

// Attribute is a plain (non-directive) tag attribute.
type Attribute struct {
	Name     string
	Value    *Text // nil when the attribute has no value
	Location SourceLocation
}

func (a *Attribute) Loc() SourceLocation { return a.Location }
func (*Attribute) astNode()              {}

// Directive is an attribute whose name begins with v-, :, @, or #.
type Directive struct {
	Name      string
	Exp       *SimpleExpression // nil when the directive has no expression
	Arg       *SimpleExpression // nil when the directive has no argument
	Modifiers []string
	Location  SourceLocation
}

func (d *Directive) Loc() SourceLocation { return d.Location }
func (*Directive) astNode()              {}
