package jsondoc

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Document is the result of parsing: a root object or array plus the
// first error encountered. A Document returned together with an error is
// only partially built and must not be trusted.
type Document struct {
	root *Value
	err  *SyntaxError

	// Beautify makes String and WriteJSON produce indented output.
	Beautify bool
}

// NewDocument returns an empty document whose root is an object.
func NewDocument() *Document {
	return &Document{root: NewObject()}
}

// Parse reads a JSON document from data. The document is never nil; if
// the error is non-nil it is a *SyntaxError.
func Parse(data string) (*Document, error) {
	d, err := parse(data)
	if err != nil {
		return d, err
	}
	return d, nil
}

// ParseBytes is like Parse but reads from a byte slice.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(string(data))
}

// NewReader reads r until EOF and parses everything read.
func NewReader(r io.Reader) (*Document, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return &Document{}, errors.Wrap(err, "reading document")
	}
	return ParseBytes(data)
}

// Root returns the top-level object or array. It is nil if parsing failed
// before the first bracket.
func (d *Document) Root() *Value {
	return d.root
}

// Err returns the error the document was parsed with or nil.
func (d *Document) Err() error {
	if d.err.Ok() {
		return nil
	}
	return d.err
}

// ErrorPosition returns the byte offset of the parse error or NoPosition.
func (d *Document) ErrorPosition() uint64 {
	if d.err.Ok() {
		return NoPosition
	}
	return d.err.Position
}

// SetAsArray turns an empty document into an array document.
func (d *Document) SetAsArray() error {
	if d.root.Len() > 0 && !d.root.IsArray() {
		return errors.Wrap(ErrInvalidArgument, "document already holds members")
	}
	if !d.root.IsArray() {
		d.root = NewArray()
	}
	return nil
}

// AddChild adds c to the root of d. See Value.AddChild.
func (d *Document) AddChild(c *Value) error {
	if d.root == nil {
		d.root = NewNull()
	}
	return d.root.AddChild(c)
}

// GetChild returns the top-level member named name.
func (d *Document) GetChild(name string) (*Value, bool) {
	return d.root.GetChild(name)
}

// FindChild searches the whole document depth-first and returns the first
// value keyed name in document order.
func (d *Document) FindChild(name string) (*Value, bool) {
	if d.root == nil {
		return nil, false
	}
	work := []*Value{d.root}
	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		if v != d.root && v.hasKey && v.key == name {
			return v, true
		}
		cc := v.children()
		for i := len(cc) - 1; i >= 0; i-- {
			work = append(work, cc[i])
		}
	}
	return nil, false
}
