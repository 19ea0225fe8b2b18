package jsondoc

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind is an enum for any JSON-types a Value can hold.
type Kind uint8

// Kinds to compare values of a tree with. The zero value is Null.
const (
	Null Kind = iota
	String
	Double
	Int
	Bool
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case String:
		return "String"
	case Double:
		return "Double"
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case Object:
		return "Object"
	case Array:
		return "Array"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one node of a tree building a JSON document.
// Depending on its kind it holds a different payload:
//     Kind	payload
//     Null	nil
//     String	string
//     Double	float64
//     Int	int64
//     Bool	bool
//     Object	[]*Value (every child keyed, keys unique)
//     Array	[]*Value (no child keyed)
// An empty object or array holds a nil slice; the kind alone tells {} and
// [] apart.
//
// A Value exclusively owns its children. Adding the same *Value to two
// parents is a caller error.
type Value struct {
	kind   Kind
	value  interface{}
	key    string
	hasKey bool
}

// NewNull returns a keyless null value.
func NewNull() *Value { return &Value{} }

// NewString returns a keyless string value.
func NewString(s string) *Value { return &Value{kind: String, value: s} }

// NewDouble returns a keyless floating point value.
func NewDouble(f float64) *Value { return &Value{kind: Double, value: f} }

// NewInt returns a keyless integer value.
func NewInt(i int64) *Value { return &Value{kind: Int, value: i} }

// NewBool returns a keyless boolean value.
func NewBool(b bool) *Value { return &Value{kind: Bool, value: b} }

// NewObject returns an empty object. It reports IsObject before any child
// is added.
func NewObject() *Value { return &Value{kind: Object} }

// NewArray returns an empty array. It reports IsArray before any child is
// added.
func NewArray() *Value { return &Value{kind: Array} }

// WithKey sets the key of v and returns v to allow chaining. The empty
// string is a valid key. Only use it on values not yet added to a parent;
// members of an object are renamed with RenameChild.
func (v *Value) WithKey(key string) *Value {
	v.setKey(key)
	return v
}

func (v *Value) setKey(key string) {
	v.key, v.hasKey = key, true
}

// Key returns the key of v and whether it has one.
func (v *Value) Key() (string, bool) {
	if v == nil {
		return "", false
	}
	return v.key, v.hasKey
}

// Type returns the Kind of v. A nil Value is Null.
func (v *Value) Type() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// setters

func (v *Value) set(k Kind, val interface{}) {
	v.kind, v.value = k, val
}

// SetString overwrites the payload of v; any children are dropped.
func (v *Value) SetString(s string) { v.set(String, s) }

// SetDouble overwrites the payload of v; any children are dropped.
func (v *Value) SetDouble(f float64) { v.set(Double, f) }

// SetInt overwrites the payload of v; any children are dropped.
func (v *Value) SetInt(i int64) { v.set(Int, i) }

// SetBool overwrites the payload of v; any children are dropped.
func (v *Value) SetBool(b bool) { v.set(Bool, b) }

// SetNull clears the payload of v; any children are dropped.
func (v *Value) SetNull() { v.set(Null, nil) }

// predicates

func (v *Value) IsNull() bool   { return v.Type() == Null }
func (v *Value) IsString() bool { return v.Type() == String }
func (v *Value) IsDouble() bool { return v.Type() == Double }
func (v *Value) IsInt() bool    { return v.Type() == Int }
func (v *Value) IsBool() bool   { return v.Type() == Bool }
func (v *Value) IsObject() bool { return v.Type() == Object }
func (v *Value) IsArray() bool  { return v.Type() == Array }

func (v *Value) isContainer() bool {
	k := v.Type()
	return k == Object || k == Array
}

// accessors

// Str returns the string payload of v.
func (v *Value) Str() (string, error) {
	if v.Type() != String {
		return "", typeMismatch(String, v)
	}
	return v.value.(string), nil
}

// Double returns the floating point payload of v. Integers are not
// converted.
func (v *Value) Double() (float64, error) {
	if v.Type() != Double {
		return 0, typeMismatch(Double, v)
	}
	return v.value.(float64), nil
}

// Int returns the integer payload of v.
func (v *Value) Int() (int64, error) {
	if v.Type() != Int {
		return 0, typeMismatch(Int, v)
	}
	return v.value.(int64), nil
}

// Bool returns the boolean payload of v.
func (v *Value) Bool() (bool, error) {
	if v.Type() != Bool {
		return false, typeMismatch(Bool, v)
	}
	return v.value.(bool), nil
}

// Children returns the members of an object or the elements of an array.
// The returned slice is owned by v.
func (v *Value) Children() ([]*Value, error) {
	if !v.isContainer() {
		return nil, errors.Wrapf(ErrTypeMismatch, "want Object or Array, got %s", v.Type())
	}
	return v.children(), nil
}

func (v *Value) children() []*Value {
	if v == nil {
		return nil
	}
	cc, _ := v.value.([]*Value)
	return cc
}

// AddChild appends c to the object or array v.
//
// If v is null it becomes an object if c has a key and an array otherwise.
// If v is an object and already holds a child with the key of c, that child
// is replaced in place. AddChild fails with an error wrapping
// ErrInvalidArgument if v holds a scalar, if v is an object and c has no
// key, or if v is an array and c has a key.
// v takes ownership of c.
func (v *Value) AddChild(c *Value) error {
	if c == nil {
		return errors.Wrap(ErrInvalidArgument, "nil child")
	}
	switch v.kind {
	case Null:
		if c.hasKey {
			v.kind = Object
		} else {
			v.kind = Array
		}
		v.value = []*Value{c}
		return nil
	case Object:
		if !c.hasKey {
			return errors.Wrap(ErrInvalidArgument, "child of object without key")
		}
		cc := v.children()
		for i, m := range cc {
			if m.key == c.key {
				cc[i] = c
				return nil
			}
		}
		v.value = append(cc, c)
		return nil
	case Array:
		if c.hasKey {
			return errors.Wrapf(ErrInvalidArgument, "child of array with key %q", c.key)
		}
		v.value = append(v.children(), c)
		return nil
	default:
		return errors.Wrapf(ErrNotArrayOrObject, "value is %s", v.kind)
	}
}

// GetChild returns the direct child of the object v named name.
// Arrays have no named children; GetChild reports false for them.
func (v *Value) GetChild(name string) (*Value, bool) {
	if v.Type() != Object {
		return nil, false
	}
	for _, c := range v.children() {
		if c.key == name {
			return c, true
		}
	}
	return nil, false
}

// RenameChild changes the key of the member old of the object v to name.
// It fails with an error wrapping ErrInvalidArgument if v is not an object,
// has no member old or already has another member named name.
func (v *Value) RenameChild(old, name string) error {
	if v.Type() != Object {
		return errors.Wrapf(ErrInvalidArgument, "rename in %s", v.Type())
	}
	var found *Value
	for _, c := range v.children() {
		switch c.key {
		case old:
			found = c
		case name:
			if old != name {
				return errors.Wrapf(ErrInvalidArgument, "key %q already present", name)
			}
		}
	}
	if found == nil {
		return errors.Wrapf(ErrInvalidArgument, "no member %q", old)
	}
	found.key = name
	return nil
}

// Index returns the i-th child of the array or object v.
func (v *Value) Index(i int) (*Value, bool) {
	cc := v.children()
	if i < 0 || i >= len(cc) {
		return nil, false
	}
	return cc[i], true
}

// RemoveChild removes the child named name from the object v and reports
// whether there was one.
func (v *Value) RemoveChild(name string) bool {
	if v.Type() != Object {
		return false
	}
	cc := v.children()
	for i, c := range cc {
		if c.key == name {
			cc = append(cc[:i], cc[i+1:]...)
			if len(cc) == 0 {
				cc = nil
			}
			v.value = cc
			return true
		}
	}
	return false
}

// Len gives the length of an array or items in an object. Scalars have a
// length of 1.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	if v.isContainer() {
		return len(v.children())
	}
	return 1
}

// Total returns the number of values in the tree rooted at v, v included.
func (v *Value) Total() int {
	if v == nil {
		return 0
	}
	n := 0
	work := []*Value{v}
	for len(work) > 0 {
		m := work[len(work)-1]
		work = work[:len(work)-1]
		n++
		work = append(work, m.children()...)
	}
	return n
}

// Equal compares the values and all their children. Keys of object
// members, the order of members and the order of array elements must
// match. The keys of a and b themselves are not compared.
func Equal(a, b *Value) bool {
	type pair struct{ a, b *Value }
	work := []pair{{a, b}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if p.a == p.b {
			continue
		}
		if p.a == nil || p.b == nil || p.a.kind != p.b.kind {
			return false
		}
		if !p.a.isContainer() {
			if p.a.value != p.b.value {
				return false
			}
			continue
		}
		ac, bc := p.a.children(), p.b.children()
		if len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if p.a.kind == Object && ac[i].key != bc[i].key {
				return false
			}
			work = append(work, pair{ac[i], bc[i]})
		}
	}
	return true
}
