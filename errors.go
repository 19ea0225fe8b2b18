package jsondoc

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// NoPosition is the position reported by a Document that was parsed
// without error. It is never a valid offset into an input.
const NoPosition uint64 = math.MaxUint64

var (
	// ErrInvalidArgument is returned when a child can not be added to a
	// Value without breaking the object/array invariants.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotArrayOrObject is a common error that multiple methods of Value
	// return. This signals that the Value holds a standalone scalar.
	ErrNotArrayOrObject = errors.Wrap(ErrInvalidArgument, "not array or object")

	// ErrTypeMismatch is returned by the accessors of Value if the payload
	// is of another kind than requested.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupportedEscape is wrapped by a SyntaxError for \u and \U escapes.
	ErrUnsupportedEscape = errors.New("unicode escapes are not supported")

	// ErrUnexpectedEOF is wrapped by a SyntaxError if the input ends while a
	// string or container is still open.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// SyntaxError captures information on errors when parsing.
// Position is the zero-based byte offset of the offending character and
// Symbol the character itself. If the input ended prematurely Position is
// the length of the input, Symbol is 0 and the error wraps
// ErrUnexpectedEOF.
type SyntaxError struct {
	Position    uint64
	Symbol      byte
	Description string
	cause       error
}

func newSyntaxError(pos int, data string, desc string) *SyntaxError {
	e := &SyntaxError{
		Position:    uint64(pos),
		Description: desc,
	}
	if pos < len(data) {
		e.Symbol = data[pos]
	}
	return e
}

func (e *SyntaxError) Error() string {
	if errors.Is(e.cause, ErrUnexpectedEOF) {
		return fmt.Sprintf("unexpected end of input on position %d; %s",
			e.Position, e.Description)
	}
	return fmt.Sprintf("unexpected symbol %s on position %d; %s",
		describe(e.Symbol), e.Position, e.Description)
}

// Unwrap returns ErrUnsupportedEscape or ErrUnexpectedEOF if the error was
// caused by one of them and nil otherwise.
func (e *SyntaxError) Unwrap() error {
	return e.cause
}

// Ok reports whether e signals no error at all. A nil SyntaxError is ok.
func (e *SyntaxError) Ok() bool {
	return e == nil || e.Position == NoPosition
}

func typeMismatch(want Kind, got *Value) error {
	return errors.Wrapf(ErrTypeMismatch, "want %s, got %s", want, got.Type())
}
