package jsondoc

// parser is a state machine creating a tree of values from raw text.
//
// It keeps no explicit state enum. The legal next token is a function of
// the previous significant character, the current character and the kind
// of the innermost open container. Open containers are tracked on stack,
// so nesting depth never grows the goroutine stack.
type parser struct {
	lexer
	doc   *Document
	stack []*Value
	prev  byte // previous significant character, 0 before the first one
	key   string
	keyed bool // key holds a parsed key still waiting for its value
}

// parse reads data in a single pass. It always returns a document; on
// error the document holds everything built up to the offending character.
func parse(data string) (*Document, *SyntaxError) {
	p := &parser{
		lexer: lexer{data: data},
		doc:   &Document{},
	}
	err := p.run()
	p.doc.err = err
	return p.doc, err
}

// parseValue is like parse but also accepts a lone scalar as the whole
// input. It returns the top-level value.
func parseValue(data string) (*Value, *SyntaxError) {
	l := &lexer{data: data}
	for l.pos < len(data) && isSpace(data[l.pos]) {
		l.pos++
	}
	if l.pos == len(data) || data[l.pos] == objectOpen || data[l.pos] == arrayOpen {
		d, err := parse(data)
		return d.root, err
	}
	var (
		v   *Value
		err *SyntaxError
	)
	switch b := data[l.pos]; {
	case b == quote:
		var s string
		if s, err = l.scanString(); err == nil {
			v = NewString(s)
		}
	case b == '-' || isDigit(b):
		v, err = l.scanNumber()
	case b == 't' || b == 'f' || b == 'n':
		v, err = l.scanKeyword()
	default:
		return nil, l.fail(l.pos, "unexpected symbol")
	}
	if err != nil {
		return nil, err
	}
	for l.pos++; l.pos < len(data); l.pos++ {
		if !isSpace(data[l.pos]) {
			return nil, l.fail(l.pos, "unexpected content after the top-level value")
		}
	}
	return v, nil
}

func (p *parser) run() *SyntaxError {
	for ; p.pos < len(p.data); p.pos++ {
		b := p.data[p.pos]
		if isSpace(b) {
			continue
		}
		if err := p.step(b); err != nil {
			return err
		}
		p.prev = p.data[p.pos]
	}
	switch {
	case p.doc.root == nil:
		return p.eof("expected object or array")
	case len(p.stack) > 0:
		return p.eof("unclosed " + p.top().kind.String())
	}
	return nil
}

func (p *parser) step(b byte) *SyntaxError {
	if p.doc.root != nil && len(p.stack) == 0 {
		return p.fail(p.pos, "unexpected content after the top-level value")
	}
	switch b {
	case objectOpen, arrayOpen:
		return p.open(b)
	case objectClose, arrayClose:
		return p.close(b)
	case colon:
		if p.prev != quote || !p.keyed {
			return p.fail(p.pos, "expected ':' only after a key")
		}
		return nil
	case comma:
		if !p.afterValue() {
			return p.fail(p.pos, "expected ',' only after a value")
		}
		return nil
	case quote:
		switch {
		case p.expectKey():
			s, err := p.scanString()
			if err != nil {
				return err
			}
			p.key, p.keyed = s, true
			return nil
		case p.expectValue():
			s, err := p.scanString()
			if err != nil {
				return err
			}
			return p.attach(NewString(s))
		}
		return p.fail(p.pos, "unexpected string")
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if !p.expectValue() {
			return p.fail(p.pos, "unexpected number")
		}
		v, err := p.scanNumber()
		if err != nil {
			return err
		}
		return p.attach(v)
	case 't', 'f', 'n':
		if !p.expectValue() {
			return p.fail(p.pos, "unexpected literal")
		}
		v, err := p.scanKeyword()
		if err != nil {
			return err
		}
		return p.attach(v)
	}
	return p.fail(p.pos, "unexpected symbol")
}

func (p *parser) top() *Value {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// expectKey reports whether a string at the cursor is an object key.
func (p *parser) expectKey() bool {
	return p.top().Type() == Object && (p.prev == objectOpen || p.prev == comma)
}

// expectValue reports whether a value may start at the cursor.
func (p *parser) expectValue() bool {
	switch p.top().Type() {
	case Object:
		return p.prev == colon
	case Array:
		return p.prev == arrayOpen || p.prev == comma
	}
	return false
}

// afterValue reports whether the previous significant character completed
// a value: the closing quote of a string value, the last digit of a
// number, the last letter of a literal or a closing bracket.
func (p *parser) afterValue() bool {
	switch p.prev {
	case objectClose, arrayClose, 'e', 'l':
		return true
	case quote:
		return !p.keyed
	}
	return isDigit(p.prev)
}

// attach adds v to the innermost open container, consuming a pending key.
func (p *parser) attach(v *Value) *SyntaxError {
	if p.keyed {
		v.setKey(p.key)
		p.key, p.keyed = "", false
	}
	if err := p.top().AddChild(v); err != nil {
		return p.fail(p.pos, err.Error())
	}
	return nil
}

func (p *parser) open(b byte) *SyntaxError {
	v := NewObject()
	if b == arrayOpen {
		v = NewArray()
	}
	switch {
	case p.prev == 0 && p.doc.root == nil:
		p.doc.root = v
	case p.expectValue():
		if err := p.attach(v); err != nil {
			return err
		}
	default:
		return p.fail(p.pos, "unexpected "+v.kind.String())
	}
	p.stack = append(p.stack, v)
	return nil
}

func (p *parser) close(b byte) *SyntaxError {
	top := p.top()
	want, opener := Object, byte(objectOpen)
	if b == arrayClose {
		want, opener = Array, arrayOpen
	}
	if top.Type() != want {
		if top == nil {
			return p.fail(p.pos, "no open "+want.String()+" to close")
		}
		return p.fail(p.pos, "mismatched bracket closing "+top.kind.String())
	}
	if p.prev != opener && !p.afterValue() {
		return p.fail(p.pos, "expected value before closing bracket")
	}
	if len(top.children()) == 0 {
		top.value = nil
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}
