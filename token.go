package jsondoc

import "strconv"

// the significant characters the parser looks back on
const (
	objectOpen  = '{'
	objectClose = '}'
	arrayOpen   = '['
	arrayClose  = ']'
	comma       = ','
	colon       = ':'
	quote       = '"'
	backslash   = '\\'
)

// isSpace reports whether b is JSON whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isDelimiter reports whether b ends a number or keyword.
func isDelimiter(b byte) bool {
	switch b {
	case comma, objectClose, arrayClose:
		return true
	}
	return isSpace(b)
}

// escapes maps the character after a backslash to its decoded form.
var escapes = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// describe generates a readable form of a symbol meant for error messages.
func describe(b byte) string {
	if b == '\'' {
		return `"'"`
	}
	if b < ' ' || b >= 0x7f {
		return strconv.QuoteRuneToASCII(rune(b))
	}
	return "'" + string(b) + "'"
}
