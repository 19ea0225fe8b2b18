package jsondoc

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Valid reports whether data is a valid JSON document.
func Valid(data []byte) bool {
	_, err := parse(string(data))
	return err == nil
}

// Marshal returns the compact JSON encoding of v. See FromGo for how Go
// values are mapped.
func Marshal(v interface{}) ([]byte, error) {
	n, err := FromGo(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal")
	}
	return format(nil, n, "", false), nil
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(v interface{}, indent string) ([]byte, error) {
	n, err := FromGo(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal")
	}
	return format(nil, n, indent, true), nil
}

// Unmarshal parses data and stores the result in the value pointed to by
// v. Struct fields are matched by their json tag.
func Unmarshal(data []byte, v interface{}) error {
	d, err := ParseBytes(data)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  v,
	})
	if err != nil {
		return errors.Wrap(err, "unmarshal")
	}
	return errors.Wrap(dec.Decode(d.root.Interface()), "unmarshal")
}
