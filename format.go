package jsondoc

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultIndent is the indent unit of beautified output.
const DefaultIndent = "  "

// format appends a valid json representation of v to buf. If pretty is
// set every level is indented with indent, members and elements go on
// their own line and keys are followed by ": ".
// v is walked with an explicit stack instead of recursion.
func format(buf []byte, v *Value, indent string, pretty bool) []byte {
	type frame struct {
		cc     []*Value
		next   int
		closer byte
	}
	var stack []frame
	newline := func() {
		if pretty {
			buf = append(buf, '\n')
			for range stack {
				buf = append(buf, indent...)
			}
		}
	}
	for {
		switch cc := v.children(); {
		case v.Type() == Object && len(cc) > 0:
			buf = append(buf, objectOpen)
			stack = append(stack, frame{cc: cc, closer: objectClose})
		case v.Type() == Array && len(cc) > 0:
			buf = append(buf, arrayOpen)
			stack = append(stack, frame{cc: cc, closer: arrayClose})
		default:
			buf = appendScalar(buf, v)
		}
		// climb up until a container has another child to write
		for v = nil; v == nil; {
			if len(stack) == 0 {
				return buf
			}
			top := &stack[len(stack)-1]
			if top.next == len(top.cc) {
				closer := top.closer
				stack = stack[:len(stack)-1]
				newline()
				buf = append(buf, closer)
				continue
			}
			if top.next > 0 {
				buf = append(buf, comma)
			}
			newline()
			v = top.cc[top.next]
			top.next++
			if top.closer == objectClose {
				buf = appendString(buf, v.key)
				buf = append(buf, colon)
				if pretty {
					buf = append(buf, ' ')
				}
			}
		}
	}
}

func appendScalar(buf []byte, v *Value) []byte {
	switch v.Type() {
	case String:
		return appendString(buf, v.value.(string))
	case Double:
		return appendFloat(buf, v.value.(float64))
	case Int:
		return strconv.AppendInt(buf, v.value.(int64), 10)
	case Bool:
		return strconv.AppendBool(buf, v.value.(bool))
	case Object:
		return append(buf, "{}"...)
	case Array:
		return append(buf, "[]"...)
	default:
		return append(buf, "null"...)
	}
}

// appendFloat writes f so that it is read back as a Double: the result
// always holds a '.' or an exponent. NaN and infinities have no JSON
// representation and are written as null.
func appendFloat(buf []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(buf, "null"...)
	}
	start := len(buf)
	mode := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		mode = 'e'
	}
	buf = strconv.AppendFloat(buf, f, mode, -1, 64)
	if mode == 'e' {
		// clean up e-09 to e-9
		n := len(buf)
		if n-start >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
	}
	if bytes.IndexAny(buf[start:], ".e") < 0 {
		buf = append(buf, ".0"...)
	}
	return buf
}

// appendString writes s quoted and escaped.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, quote)
	last := 0
	for i := 0; i < len(s); i++ {
		var esc byte
		switch c := s[i]; c {
		case quote, backslash, '/':
			esc = c
		case '\b':
			esc = 'b'
		case '\f':
			esc = 'f'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		default:
			continue
		}
		buf = append(buf, s[last:i]...)
		buf = append(buf, backslash, esc)
		last = i + 1
	}
	buf = append(buf, s[last:]...)
	return append(buf, quote)
}

// EncodeString returns s as a quoted JSON string. '"', '\' and '/' are
// escaped with a backslash as are the control characters \b, \f, \n, \r
// and \t.
func EncodeString(s string) string {
	return string(appendString(make([]byte, 0, len(s)+2), s))
}

// Beautify indents a compact JSON document. Whitespace outside of strings
// is dropped, so already indented input is reformatted. The output is the
// same as writing the parsed document with WriteIndent.
// Beautify does not validate its input.
func Beautify(doc, indent string) string {
	var b strings.Builder
	b.Grow(len(doc) * 2)
	level := 0
	newline := func() {
		b.WriteByte('\n')
		for i := 0; i < level; i++ {
			b.WriteString(indent)
		}
	}
	inString, escaped := false, false
	for i := 0; i < len(doc); i++ {
		c := doc[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == backslash:
				escaped = true
			case c == quote:
				inString = false
			}
			continue
		}
		switch c {
		case quote:
			inString = true
			b.WriteByte(c)
		case objectOpen, arrayOpen:
			b.WriteByte(c)
			if j := nextSignificant(doc, i+1); j < len(doc) && (doc[j] == objectClose || doc[j] == arrayClose) {
				b.WriteByte(doc[j])
				i = j
				continue
			}
			level++
			newline()
		case objectClose, arrayClose:
			level--
			newline()
			b.WriteByte(c)
		case comma:
			b.WriteByte(c)
			newline()
		case colon:
			b.WriteString(": ")
		default:
			if !isSpace(c) {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

func nextSignificant(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// String formats v as valid JSON with no whitespace. The key of v itself
// is not written.
func (v *Value) String() string {
	return string(format(nil, v, "", false))
}

// Indent formats v as indented JSON using indent for each level.
func (v *Value) Indent(indent string) string {
	return string(format(nil, v, indent, true))
}

// WriteJSON writes v to w with the same representation as v.String().
func (v *Value) WriteJSON(w io.Writer) (int, error) {
	return w.Write(format(nil, v, "", false))
}

// WriteIndent writes v to w with the given indent (preferably spaces or a
// tab).
func (v *Value) WriteIndent(w io.Writer, indent string) (int, error) {
	return w.Write(format(nil, v, indent, true))
}

// Serialize renders d compact or, if beautify is set, indented by
// DefaultIndent.
func Serialize(d *Document, beautify bool) string {
	if beautify {
		return d.root.Indent(DefaultIndent)
	}
	return d.root.String()
}

// String renders d as Serialize does with the Beautify field of d.
func (d *Document) String() string {
	return Serialize(d, d.Beautify)
}

// WriteJSON writes d to w honouring the Beautify field of d.
func (d *Document) WriteJSON(w io.Writer) (int, error) {
	return io.WriteString(w, d.String())
}

// WriteIndent writes d to w with the given indent.
func (d *Document) WriteIndent(w io.Writer, indent string) (int, error) {
	return d.root.WriteIndent(w, indent)
}
