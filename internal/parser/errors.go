package parser

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/weftui/tmplc/ast"
)

// ErrorCode names a diagnostic's semantics (spec.md §7). It is a defined
// string, not an int enum, so a caller collecting diagnostics into a log
// line or a JSON payload gets a stable, self-describing token without a
// side lookup table.
type ErrorCode string

const (
	ErrEOFBeforeTagName                      ErrorCode = "EOF_BEFORE_TAG_NAME"
	ErrEOFInTag                              ErrorCode = "EOF_IN_TAG"
	ErrEOFInComment                          ErrorCode = "EOF_IN_COMMENT"
	ErrEOFInCDATA                            ErrorCode = "EOF_IN_CDATA"
	ErrEOFInScriptHTMLCommentLikeText        ErrorCode = "EOF_IN_SCRIPT_HTML_COMMENT_LIKE_TEXT"
	ErrMissingEndTagName                     ErrorCode = "MISSING_END_TAG_NAME"
	ErrInvalidFirstCharacterOfTagName        ErrorCode = "INVALID_FIRST_CHARACTER_OF_TAG_NAME"
	ErrUnexpectedQuestionMarkInsteadOfTagName ErrorCode = "UNEXPECTED_QUESTION_MARK_INSTEAD_OF_TAG_NAME"
	ErrXMissingEndTag                        ErrorCode = "X_MISSING_END_TAG"
	ErrXInvalidEndTag                        ErrorCode = "X_INVALID_END_TAG"

	ErrIncorrectlyOpenedComment    ErrorCode = "INCORRECTLY_OPENED_COMMENT"
	ErrIncorrectlyClosedComment    ErrorCode = "INCORRECTLY_CLOSED_COMMENT"
	ErrAbruptClosingOfEmptyComment ErrorCode = "ABRUPT_CLOSING_OF_EMPTY_COMMENT"
	ErrNestedComment               ErrorCode = "NESTED_COMMENT"
	ErrCDATAInHTMLContent          ErrorCode = "CDATA_IN_HTML_CONTENT"

	ErrDuplicateAttribute                          ErrorCode = "DUPLICATE_ATTRIBUTE"
	ErrUnexpectedEqualsSignBeforeAttributeName     ErrorCode = "UNEXPECTED_EQUALS_SIGN_BEFORE_ATTRIBUTE_NAME"
	ErrUnexpectedCharacterInAttributeName          ErrorCode = "UNEXPECTED_CHARACTER_IN_ATTRIBUTE_NAME"
	ErrMissingAttributeValue                       ErrorCode = "MISSING_ATTRIBUTE_VALUE"
	ErrUnexpectedCharacterInUnquotedAttributeValue ErrorCode = "UNEXPECTED_CHARACTER_IN_UNQUOTED_ATTRIBUTE_VALUE"
	ErrMissingWhitespaceBetweenAttributes          ErrorCode = "MISSING_WHITESPACE_BETWEEN_ATTRIBUTES"
	ErrUnexpectedSolidusInTag                      ErrorCode = "UNEXPECTED_SOLIDUS_IN_TAG"
	ErrEndTagWithAttributes                        ErrorCode = "END_TAG_WITH_ATTRIBUTES"
	ErrEndTagWithTrailingSolidus                   ErrorCode = "END_TAG_WITH_TRAILING_SOLIDUS"

	ErrAbsenceOfDigitsInNumericCharacterReference ErrorCode = "ABSENCE_OF_DIGITS_IN_NUMERIC_CHARACTER_REFERENCE"
	ErrNullCharacterReference                     ErrorCode = "NULL_CHARACTER_REFERENCE"
	ErrCharacterReferenceOutsideUnicodeRange      ErrorCode = "CHARACTER_REFERENCE_OUTSIDE_UNICODE_RANGE"
	ErrSurrogateCharacterReference                ErrorCode = "SURROGATE_CHARACTER_REFERENCE"
	ErrNonCharacterCharacterReference             ErrorCode = "NONCHARACTER_CHARACTER_REFERENCE"
	ErrControlCharacterReference                  ErrorCode = "CONTROL_CHARACTER_REFERENCE"
	ErrUnknownNamedCharacterReference             ErrorCode = "UNKNOWN_NAMED_CHARACTER_REFERENCE"
	ErrMissingSemicolonAfterCharacterReference    ErrorCode = "MISSING_SEMICOLON_AFTER_CHARACTER_REFERENCE"

	ErrXMissingInterpolationEnd            ErrorCode = "X_MISSING_INTERPOLATION_END"
	ErrXMissingDynamicDirectiveArgumentEnd ErrorCode = "X_MISSING_DYNAMIC_DIRECTIVE_ARGUMENT_END"
)

// Diagnostic is the structured, non-fatal error record spec.md §7
// requires: a code plus the source span it was raised at.
type Diagnostic struct {
	Code ErrorCode
	Loc  ast.SourceLocation
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at %s", d.Code, d.Loc.Start)
}

// ContextualMessage renders the diagnostic with a caret-style excerpt of
// the surrounding source, the way the teacher's
// ParseError.ContextualMessage does for its own ParseError.
func (d *Diagnostic) ContextualMessage(original string) string {
	before, after := ast.Context(original, d.Loc.Start, 100, 3)
	return fmt.Sprintf("%s (\"%s[ERROR ->]%s\")", d.Code, before, after)
}

var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func defaultOnError(d *Diagnostic) {
	logDiagnostic(d)
}

func logDiagnostic(d *Diagnostic) {
	defaultLogger.Warn("parse diagnostic", "code", d.Code, "at", d.Loc.Start.String())
}
