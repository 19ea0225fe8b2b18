package jsondoc

import (
	"math"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// FromGo reads in a Go-value and generates a tree that can be manipulated
// easily. Signed and unsigned integers become Int, floats become Double.
// Map keys must be strings; they are sorted. Struct fields honour the json
// tag name, "-" and the omitempty option.
// TODO(JMH): support the string tag option like encoding/json
func FromGo(val interface{}) (*Value, error) {
	if val == nil {
		return NewNull(), nil
	}
	return fromReflect(reflect.ValueOf(val))
}

func fromReflect(v reflect.Value) (*Value, error) {
	switch v.Kind() {
	case reflect.Bool:
		return NewBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, errors.Errorf("unsigned integer %d overflows int64", u)
		}
		return NewInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return NewDouble(v.Float()), nil
	case reflect.String:
		return NewString(v.String()), nil
	case reflect.Slice:
		if v.IsNil() {
			return NewNull(), nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return NewString(string(v.Bytes())), nil
		}
		fallthrough
	case reflect.Array:
		a := NewArray()
		for i := 0; i < v.Len(); i++ {
			n, err := fromReflect(v.Index(i))
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			if err := a.AddChild(n); err != nil {
				return nil, err
			}
		}
		return a, nil
	case reflect.Map:
		if v.IsNil() {
			return NewNull(), nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, errors.Errorf("invalid map key type %s", v.Type().Key())
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		o := NewObject()
		for _, key := range keys {
			n, err := fromReflect(v.MapIndex(key))
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", key.String())
			}
			if err := o.AddChild(n.WithKey(key.String())); err != nil {
				return nil, err
			}
		}
		return o, nil
	case reflect.Struct:
		o := NewObject()
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			elemT := t.Field(i)
			if r, _ := utf8.DecodeRuneInString(elemT.Name); !unicode.IsUpper(r) {
				continue
			}
			tags := strings.Split(elemT.Tag.Get("json"), ",")
			if len(tags) == 1 && tags[0] == "-" {
				continue
			}
			key := tags[0]
			if key == "" {
				key = elemT.Name
			}
			if hasOption(tags[1:], "omitempty") && v.Field(i).IsZero() {
				continue
			}
			n, err := fromReflect(v.Field(i))
			if err != nil {
				return nil, errors.Wrapf(err, "field %s", elemT.Name)
			}
			if err := o.AddChild(n.WithKey(key)); err != nil {
				return nil, err
			}
		}
		return o, nil
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return NewNull(), nil
		}
		return fromReflect(v.Elem())
	default:
		return nil, errors.Errorf("invalid type %s", v.Kind())
	}
}

func hasOption(opts []string, name string) bool {
	for _, o := range opts {
		if o == name {
			return true
		}
	}
	return false
}

// Interface creates the Go representation of a Value.
// Like encoding/json the possible underlying types are:
//     Object    map[string]interface{}
//     Array     []interface{}
//     String    string
//     Double    float64
//     Int       int64
//     Bool      bool
//     Null      nil
func (v *Value) Interface() interface{} {
	switch v.Type() {
	case Object:
		m := make(map[string]interface{}, v.Len())
		for _, c := range v.children() {
			m[c.key] = c.Interface()
		}
		return m
	case Array:
		s := make([]interface{}, 0, v.Len())
		for _, c := range v.children() {
			s = append(s, c.Interface())
		}
		return s
	case Null:
		return nil
	default:
		return v.value
	}
}

// MarshalJSON implements the json.Marshaler interface for Value.
func (v *Value) MarshalJSON() ([]byte, error) {
	return format(nil, v, "", false), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Value.
// Unlike a Document a Value may be a lone scalar. The key of v is kept.
func (v *Value) UnmarshalJSON(data []byte) error {
	n, err := parseValue(string(data))
	if err != nil {
		return err
	}
	v.kind, v.value = n.kind, n.value
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.root.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Document.
func (d *Document) UnmarshalJSON(data []byte) error {
	m, err := ParseBytes(data)
	if err != nil {
		return err
	}
	d.root, d.err = m.root, nil
	return nil
}
