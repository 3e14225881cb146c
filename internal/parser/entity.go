package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/weftui/tmplc/ast"
)

// c0c1Remap is the table spec.md §6 gives for numeric character references
// that land on a C0/C1 control code: browsers remap these to the Windows-1252
// codepoint a legacy author actually meant.
var c0c1Remap = map[rune]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E, 0x85: 0x2026,
	0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6, 0x89: 0x2030, 0x8A: 0x0160,
	0x8B: 0x2039, 0x8C: 0x0152, 0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019,
	0x93: 0x201C, 0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A, 0x9C: 0x0153,
	0x9E: 0x017E, 0x9F: 0x0178,
}

func isControlOtherThanWhitespace(cp rune) bool {
	isC0 := cp >= 0x01 && cp <= 0x1F && cp != 0x09 && cp != 0x0A && cp != 0x0C && cp != 0x0D && cp != 0x20
	isC1 := cp >= 0x7F && cp <= 0x9F
	return isC0 || isC1
}

// parseTextData extracts the next `length` bytes of the current source as
// a text run, advances the cursor past them, and — unless mode is RAWTEXT
// or CDATA — decodes named/numeric character references inside it. This
// mirrors the teacher's _consumeEntity in spirit (decode in place, report
// and continue on malformed references) but operates on the bounded slice
// the caller already computed the end of, rather than re-scanning the
// live cursor past that boundary.
func (c *context) parseTextData(length int, mode ast.TextMode) string {
	start := c.getCursor()
	raw := c.source[:length]
	c.advanceBy(length)

	if mode == ast.TextModeRawText || mode == ast.TextModeCData {
		return raw
	}
	if !strings.ContainsRune(raw, '&') {
		return raw
	}
	return c.decodeEntities(raw, start, mode == ast.TextModeAttributeValue)
}

func (c *context) decodeEntities(raw string, base ast.Position, isAttr bool) string {
	var out strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] != '&' {
			out.WriteByte(raw[i])
			i++
			continue
		}

		// Numeric character reference: &#... or &#x...
		if i+1 < len(raw) && raw[i+1] == '#' {
			consumed, text := c.decodeNumericReference(raw[i:], base, i)
			out.WriteString(text)
			i += consumed
			continue
		}

		// Named character reference: &name or &name;
		if i+1 < len(raw) && isAlphaNumericLower(toLowerByte(raw[i+1])) {
			consumed, text := c.decodeNamedReference(raw[i:], base, i, isAttr)
			out.WriteString(text)
			i += consumed
			continue
		}

		// Bare '&' not followed by a valid start.
		out.WriteByte('&')
		i++
	}
	return out.String()
}

// decodeNamedReference handles the name-lookup rules of spec.md §4.5: try
// successively shorter substrings of length maxCRNameLength down to 1
// (starting right after the '&'), returning the first that is a key in
// NamedCharacterReferences.
func (c *context) decodeNamedReference(tail string, base ast.Position, offset int, isAttr bool) (consumed int, text string) {
	maxLen := c.opts.maxCRNameLength
	if maxLen > len(tail)-1 {
		maxLen = len(tail) - 1
	}
	for l := maxLen; l >= 1; l-- {
		name := tail[1 : 1+l]
		v, ok := c.opts.NamedCharacterReferences[name]
		if !ok {
			continue
		}
		semi := strings.HasSuffix(name, ";")
		nameLen := 1 + l // '&' + name

		if isAttr && !semi {
			after := byte(0)
			if nameLen < len(tail) {
				after = tail[nameLen]
			}
			if after != 0 && (after == '=' || isAlphaNumericLower(toLowerByte(after))) {
				// Historical compatibility: keep literal, don't decode.
				return nameLen, tail[:nameLen]
			}
		}
		if !semi {
			c.error(ErrMissingSemicolonAfterCharacterReference, c.pointLoc(base, offset, nameLen))
		}
		return nameLen, v
	}

	// No match: scan the literal name (letters/digits), optionally
	// followed by ';', report it unknown, and flush it back unchanged.
	end := 1
	for end < len(tail) && isAlphaNumericLower(toLowerByte(tail[end])) {
		end++
	}
	if end < len(tail) && tail[end] == ';' {
		end++
	}
	c.error(ErrUnknownNamedCharacterReference, c.pointLoc(base, offset, end))
	return end, tail[:end]
}

// decodeNumericReference handles &#nnn; and &#xhh; per spec.md §4.5.
func (c *context) decodeNumericReference(tail string, base ast.Position, offset int) (consumed int, text string) {
	isHex := len(tail) > 2 && (tail[2] == 'x' || tail[2] == 'X')
	digitsStart := 2
	if isHex {
		digitsStart = 3
	}
	end := digitsStart
	for end < len(tail) {
		if isHex && isAsciiHexDigit(tail[end]) {
			end++
		} else if !isHex && isDigit(tail[end]) {
			end++
		} else {
			break
		}
	}
	if end == digitsStart {
		c.error(ErrAbsenceOfDigitsInNumericCharacterReference, c.pointLoc(base, offset, digitsStart))
		return digitsStart, tail[:digitsStart]
	}

	digits := tail[digitsStart:end]
	hasSemi := end < len(tail) && tail[end] == ';'
	consumed = end
	if hasSemi {
		consumed++
	}

	var cp int64
	if isHex {
		cp, _ = strconv.ParseInt(digits, 16, 64)
	} else {
		cp, _ = strconv.ParseInt(digits, 10, 64)
	}
	r := rune(cp)

	refLoc := c.pointLoc(base, offset, consumed)
	switch {
	case cp == 0:
		c.error(ErrNullCharacterReference, refLoc)
		r = 0xFFFD
	case cp > 0x10FFFF:
		c.error(ErrCharacterReferenceOutsideUnicodeRange, refLoc)
		r = 0xFFFD
	case cp >= 0xD800 && cp <= 0xDFFF:
		c.error(ErrSurrogateCharacterReference, refLoc)
		r = 0xFFFD
	case (cp >= 0xFDD0 && cp <= 0xFDEF) || (cp&0xFFFE) == 0xFFFE:
		c.error(ErrNonCharacterCharacterReference, refLoc)
	case isControlOtherThanWhitespace(r):
		c.error(ErrControlCharacterReference, refLoc)
		if remapped, ok := c0c1Remap[r]; ok {
			r = remapped
		}
	}

	if !hasSemi {
		c.error(ErrMissingSemicolonAfterCharacterReference, refLoc)
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return consumed, string(buf[:n])
}

// pointLoc builds a SourceLocation covering [base+offset, base+offset+n)
// using getNewPosition, for diagnostics raised while decoding a bounded
// raw-text slice whose own start position is `base`.
func (c *context) pointLoc(base ast.Position, offset, n int) ast.SourceLocation {
	start := c.getNewPosition(base, offset)
	end := c.getNewPosition(base, offset+n)
	return ast.SourceLocation{Start: start, End: end, Source: c.original[start.Offset:end.Offset]}
}
