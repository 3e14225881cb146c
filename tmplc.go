// Package tmplc parses template source text into an AST: a synchronous
// string-to-tree transform with no persisted state. Its only output besides
// the tree is diagnostics, handed to a caller-supplied sink or, when none
// is set, logged to stderr (see internal/parser for the implementation).
package tmplc

import (
	"github.com/weftui/tmplc/ast"
	"github.com/weftui/tmplc/internal/parser"
)

// Options configures a Parse call. See internal/parser.RawOptions for the
// field-by-field defaults every zero-valued field resolves to.
type Options = parser.RawOptions

// Diagnostic is a single non-fatal parse error, reported through a
// caller-supplied OnError sink rather than as a returned error value:
// parsing only stops at end of source, never at a diagnostic.
type Diagnostic = parser.Diagnostic

// ErrorCode names a diagnostic's semantics.
type ErrorCode = parser.ErrorCode

// ErrorSink receives every diagnostic Parse produces.
type ErrorSink = parser.ErrorSink

// Parse converts content into an AST. It never returns an error and never
// panics; malformed input is reported through opts.OnError (or logged via
// the default sink when unset) and recovered from in place.
func Parse(content string, opts Options) *ast.Root {
	return parser.Parse(content, opts)
}
