package html

// NamedCharacterReferences is an expanded, hand-picked subset of the
// WHATWG named character reference table covering the entities templates
// actually use day to day: the 5 spec defaults, common Latin-1
// punctuation and accented letters, and a handful of typographic marks.
// It is not the full ~2,200-entry table; a caller needing full HTML5
// conformance should inject its own table via Options().NamedCharacterReferences.
var NamedCharacterReferences = map[string]string{
	"amp;":  "&",
	"lt;":   "<",
	"gt;":   ">",
	"quot;": "\"",
	"apos;": "'",

	"nbsp;":   " ",
	"copy;":   "©",
	"reg;":    "®",
	"trade;":  "™",
	"deg;":    "°",
	"plusmn;": "±",
	"times;":  "×",
	"divide;": "÷",
	"micro;":  "µ",
	"para;":   "¶",
	"sect;":   "§",
	"middot;": "·",

	"hellip;": "…",
	"mdash;":  "—",
	"ndash;":  "–",
	"lsquo;":  "‘",
	"rsquo;":  "’",
	"ldquo;":  "“",
	"rdquo;":  "”",
	"laquo;":  "«",
	"raquo;":  "»",

	"eacute;": "é",
	"egrave;": "è",
	"agrave;": "à",
	"ccedil;": "ç",
	"uuml;":   "ü",
	"ouml;":   "ö",
	"auml;":   "ä",
	"euml;":   "ë",
	"ntilde;": "ñ",

	"euro;":  "€",
	"pound;": "£",
	"cent;":  "¢",
	"yen;":   "¥",
}
