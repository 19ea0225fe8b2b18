package jsondoc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildPromotes(t *testing.T) {
	v := NewNull()
	require.NoError(t, v.AddChild(NewInt(1).WithKey("a")))
	assert.True(t, v.IsObject())
	assert.False(t, v.IsNull())

	w := NewNull()
	require.NoError(t, w.AddChild(NewInt(1)))
	assert.True(t, w.IsArray())
	assert.Equal(t, 1, w.Len())
}

func TestAddChildReplacesByKey(t *testing.T) {
	v := NewObject()
	require.NoError(t, v.AddChild(NewInt(1).WithKey("a")))
	require.NoError(t, v.AddChild(NewInt(2).WithKey("b")))
	require.NoError(t, v.AddChild(NewString("x").WithKey("a")))

	assert.Equal(t, 2, v.Len())
	assert.Equal(t, `{"a":"x","b":2}`, v.String())
	c, ok := v.GetChild("a")
	require.True(t, ok)
	s, err := c.Str()
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}

func TestAddChildInvariants(t *testing.T) {
	tests := []struct {
		name   string
		parent *Value
		child  *Value
	}{
		{"keyed child into array", NewArray(), NewInt(1).WithKey("a")},
		{"keyless child into object", NewObject(), NewInt(1)},
		{"empty key is still a key", arr(NewInt(1)), NewInt(2).WithKey("")},
		{"child into string", NewString("s"), NewInt(1)},
		{"child into int", NewInt(3), NewInt(1).WithKey("a")},
		{"child into bool", NewBool(true), NewInt(1)},
		{"child into double", NewDouble(1.5), NewInt(1)},
		{"nil child", NewArray(), nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := test.parent.String()
			err := test.parent.AddChild(test.child)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
			assert.Equal(t, before, test.parent.String())
		})
	}
	err := NewInt(1).AddChild(NewInt(2))
	assert.True(t, errors.Is(err, ErrNotArrayOrObject))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		have *Value
		want Kind
	}{
		{NewNull(), Null},
		{NewString(""), String},
		{NewDouble(0), Double},
		{NewInt(0), Int},
		{NewBool(false), Bool},
		{NewObject(), Object},
		{NewArray(), Array},
		{nil, Null},
	}
	for _, test := range tests {
		v := test.have
		got := map[Kind]bool{
			Null:   v.IsNull(),
			String: v.IsString(),
			Double: v.IsDouble(),
			Int:    v.IsInt(),
			Bool:   v.IsBool(),
			Object: v.IsObject(),
			Array:  v.IsArray(),
		}
		for k, is := range got {
			assert.Equal(t, k == test.want, is, "Is%s on %s", k, test.want)
		}
		assert.Equal(t, test.want, v.Type())
	}
}

func TestAccessors(t *testing.T) {
	s, err := NewString("hi").Str()
	assert.NoError(t, err)
	assert.Equal(t, "hi", s)

	d, err := NewDouble(2.5).Double()
	assert.NoError(t, err)
	assert.Equal(t, 2.5, d)

	i, err := NewInt(-7).Int()
	assert.NoError(t, err)
	assert.Equal(t, int64(-7), i)

	b, err := NewBool(true).Bool()
	assert.NoError(t, err)
	assert.True(t, b)

	cc, err := arr(NewInt(1), NewInt(2)).Children()
	assert.NoError(t, err)
	assert.Len(t, cc, 2)

	cc, err = NewObject().Children()
	assert.NoError(t, err)
	assert.Empty(t, cc)
}

func TestAccessorsTypeMismatch(t *testing.T) {
	mismatch := func(err error) {
		t.Helper()
		assert.True(t, errors.Is(err, ErrTypeMismatch), "got %v", err)
	}
	_, err := NewInt(3).Str()
	mismatch(err)
	_, err = NewInt(3).Double()
	mismatch(err)
	_, err = NewDouble(3).Int()
	mismatch(err)
	_, err = NewString("true").Bool()
	mismatch(err)
	_, err = NewNull().Children()
	mismatch(err)
	_, err = NewNull().Str()
	mismatch(err)
}

func TestSetters(t *testing.T) {
	v := obj(NewInt(1).WithKey("a"))
	v.SetString("")
	assert.True(t, v.IsString())
	assert.False(t, v.IsObject())
	s, err := v.Str()
	assert.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, `""`, v.String())

	v.SetDouble(1.25)
	assert.True(t, v.IsDouble())
	v.SetInt(4)
	assert.True(t, v.IsInt())
	v.SetBool(false)
	assert.True(t, v.IsBool())
	v.SetNull()
	assert.True(t, v.IsNull())
	assert.Equal(t, "null", v.String())
}

func TestKey(t *testing.T) {
	v := NewInt(1)
	_, ok := v.Key()
	assert.False(t, ok)

	v = NewInt(1).WithKey("")
	k, ok := v.Key()
	assert.True(t, ok)
	assert.Equal(t, "", k)
}

func TestRenameChild(t *testing.T) {
	v := obj(NewInt(1).WithKey("x"), NewInt(2).WithKey("y"))

	err := v.RenameChild("y", "x")
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
	assert.Equal(t, `{"x":1,"y":2}`, v.String())

	err = v.RenameChild("missing", "z")
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)

	require.NoError(t, v.RenameChild("x", "x"))
	require.NoError(t, v.RenameChild("y", "z"))
	assert.Equal(t, `{"x":1,"z":2}`, v.String())
	c, ok := v.GetChild("z")
	require.True(t, ok)
	k, _ := c.Key()
	assert.Equal(t, "z", k)

	// the renamed tree still round trips
	d, err := Parse(v.String())
	require.NoError(t, err)
	assert.True(t, Equal(v, d.Root()))

	err = arr(NewInt(1)).RenameChild("0", "a")
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
	err = NewInt(1).RenameChild("a", "b")
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
}

func TestGetChild(t *testing.T) {
	tests := []struct {
		json  string
		key   string
		want  bool
		value string
	}{
		{`{"a":null,"b":5,"json":"hello there"}`, "json", true, `"hello there"`},
		{`{"index":{"inner":[true]}}`, "index", true, `{"inner":[true]}`},
		{`{"index":{"inner":[true]}}`, "inner", false, ""},
		{`[null,5,"hello there"]`, "0", false, ""},
		{`{"":1}`, "", true, "1"},
	}
	for _, test := range tests {
		d, err := Parse(test.json)
		require.NoError(t, err)
		m, ok := d.Root().GetChild(test.key)
		if ok != test.want {
			t.Errorf("%s %s", test.json, test.key)
		} else if ok && m.String() != test.value {
			t.Errorf("%s %s", m, test.value)
		}
	}
}

func TestRemoveChild(t *testing.T) {
	v := obj(NewInt(1).WithKey("a"), NewInt(2).WithKey("b"))
	assert.True(t, v.RemoveChild("a"))
	assert.False(t, v.RemoveChild("a"))
	assert.Equal(t, `{"b":2}`, v.String())
	assert.True(t, v.RemoveChild("b"))
	assert.True(t, v.IsObject())
	assert.Equal(t, `{}`, v.String())
	assert.False(t, arr(NewInt(1)).RemoveChild("0"))
}

func TestLenTotal(t *testing.T) {
	tests := []struct {
		json  string
		len   int
		total int
	}{
		{"{}", 0, 1},
		{`{"a":5,"b":null}`, 2, 3},
		{"[1,2,3,4,5,6,7,8,9]", 9, 10},
		{`{"a":[1,{"b":[]}]}`, 1, 5},
	}
	for _, test := range tests {
		d, err := Parse(test.json)
		require.NoError(t, err)
		assert.Equal(t, test.len, d.Root().Len(), test.json)
		assert.Equal(t, test.total, d.Root().Total(), test.json)
	}
	assert.Equal(t, 1, NewString("x").Len())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(obj(NewInt(1).WithKey("a")), obj(NewInt(1).WithKey("a"))))
	assert.False(t, Equal(obj(NewInt(1).WithKey("a")), obj(NewInt(1).WithKey("b"))))
	assert.False(t, Equal(NewInt(1), NewDouble(1)))
	assert.False(t, Equal(NewObject(), NewArray()))
	assert.False(t, Equal(arr(NewInt(1), NewInt(2)), arr(NewInt(2), NewInt(1))))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(NewNull(), nil))
}
