package jsondoc

import (
	"strconv"
	"strings"
)

// lexer holds the input and the cursor shared by the parser and the
// scanners below. Every scanner starts at the first character of its token
// and leaves pos on the last character it consumed.
type lexer struct {
	data string
	pos  int
}

func (l *lexer) fail(pos int, desc string) *SyntaxError {
	return newSyntaxError(pos, l.data, desc)
}

func (l *lexer) eof(desc string) *SyntaxError {
	e := newSyntaxError(len(l.data), l.data, desc)
	e.cause = ErrUnexpectedEOF
	return e
}

// scanString reads a quoted string starting at the opening quote and
// returns its decoded content.
func (l *lexer) scanString() (string, *SyntaxError) {
	start := l.pos + 1
	var buf []byte // nil until the first escape
	for i := start; i < len(l.data); i++ {
		switch b := l.data[i]; b {
		case quote:
			l.pos = i
			if buf == nil {
				return l.data[start:i], nil
			}
			return string(buf), nil
		case backslash:
			if buf == nil {
				buf = make([]byte, 0, i-start+16)
				buf = append(buf, l.data[start:i]...)
			}
			i++
			if i >= len(l.data) {
				return "", l.eof("unterminated escape sequence")
			}
			e := l.data[i]
			if e == 'u' || e == 'U' {
				err := l.fail(i, "unicode escape sequence")
				err.cause = ErrUnsupportedEscape
				return "", err
			}
			d := escapes[e]
			if d == 0 {
				return "", l.fail(i, "invalid escape sequence")
			}
			buf = append(buf, d)
		default:
			if buf != nil {
				buf = append(buf, b)
			}
		}
	}
	return "", l.eof("unterminated string")
}

// scanKeyword matches one of the literals true, false or null.
func (l *lexer) scanKeyword() (*Value, *SyntaxError) {
	var word string
	var v *Value
	switch l.data[l.pos] {
	case 't':
		word, v = "true", NewBool(true)
	case 'f':
		word, v = "false", NewBool(false)
	default:
		word, v = "null", NewNull()
	}
	for i := 1; i < len(word); i++ {
		p := l.pos + i
		if p >= len(l.data) {
			return nil, l.eof("truncated literal " + word)
		}
		if l.data[p] != word[i] {
			return nil, l.fail(p, "invalid literal, expected "+word)
		}
	}
	end := l.pos + len(word)
	if end < len(l.data) && !isDelimiter(l.data[end]) {
		return nil, l.fail(end, "invalid literal, expected delimiter after "+word)
	}
	l.pos = end - 1
	return v, nil
}

// numFunc consumes one byte of a number. It returns the state for the next
// byte or done if b terminates a complete number. A nil state without done
// rejects b.
type numFunc func(b byte) (next numFunc, done bool)

func numStart(b byte) (numFunc, bool) {
	switch {
	case b == '-':
		return numSign, false
	case b == '0':
		return numZero, false
	case isDigit(b):
		return numInt, false
	}
	return nil, false
}

func numSign(b byte) (numFunc, bool) {
	switch {
	case b == '0':
		return numZero, false
	case isDigit(b):
		return numInt, false
	}
	return nil, false
}

func numZero(b byte) (numFunc, bool) {
	switch {
	case b == '.':
		return numDot, false
	case b == 'e' || b == 'E':
		return numExp, false
	}
	return nil, isDelimiter(b)
}

func numInt(b byte) (numFunc, bool) {
	if isDigit(b) {
		return numInt, false
	}
	return numZero(b)
}

func numDot(b byte) (numFunc, bool) {
	if isDigit(b) {
		return numFrac, false
	}
	return nil, false
}

func numFrac(b byte) (numFunc, bool) {
	switch {
	case isDigit(b):
		return numFrac, false
	case b == 'e' || b == 'E':
		return numExp, false
	}
	return nil, isDelimiter(b)
}

func numExp(b byte) (numFunc, bool) {
	switch {
	case b == '+' || b == '-':
		return numExpSign, false
	case isDigit(b):
		return numExpDigits, false
	}
	return nil, false
}

func numExpSign(b byte) (numFunc, bool) {
	if isDigit(b) {
		return numExpDigits, false
	}
	return nil, false
}

func numExpDigits(b byte) (numFunc, bool) {
	if isDigit(b) {
		return numExpDigits, false
	}
	return nil, isDelimiter(b)
}

// scanNumber reads a number. Numbers with a fraction or an exponent become
// a Double, all others an Int.
func (l *lexer) scanNumber() (*Value, *SyntaxError) {
	start := l.pos
	i := start
	for f := numFunc(numStart); ; i++ {
		b := byte(' ') // the end of input terminates like whitespace
		if i < len(l.data) {
			b = l.data[i]
		}
		var done bool
		f, done = f(b)
		if done {
			break
		}
		if f == nil {
			if i >= len(l.data) {
				return nil, l.eof("truncated number")
			}
			return nil, l.fail(i, "malformed number")
		}
	}
	text := l.data[start:i]
	l.pos = i - 1
	if strings.ContainsAny(text, ".eE") {
		d, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, l.fail(start, "number out of range")
		}
		return NewDouble(d), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, l.fail(start, "integer out of range")
	}
	return NewInt(n), nil
}
