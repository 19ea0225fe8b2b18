// Jannis M. Hoffmann, 13. 9. 2018

/*
Package jsondoc encodes and decodes JSON documents.
In contrast to encoding/json jsondoc is centered around a tree of Values.
A document is parsed in a single forward pass and every Value of the
resulting tree can be inspected, changed and serialized again, either
compact or indented.

Numbers keep their lexical class: 3 is an Int and 3.0 or 3e2 is a Double.
Object members keep their insertion order and keys are unique; adding a
member whose key is already present replaces the old member in place.

jsondoc is partly compatible with encoding/json.
Value and Document fulfill the json.Marshaler/Unmarshaler interfaces.

Unicode escapes (\uXXXX) are not decoded; a document containing one fails
to parse with an error wrapping ErrUnsupportedEscape.
*/
package jsondoc // import "github.com/d1ced/jsondoc"
