package trit

import (
	"errors"
	"fmt"
	"strings"
)

var ErrLengthMismatch = errors.New("trit string length mismatch")

// TritString is an immutable, variable-length sequence of trits. Index 0 is
// the first element.
type TritString struct {
	values []Trit
}

func NewTritString(ts ...Trit) TritString {
	return TritString{values: append([]Trit(nil), ts...)}
}

// ParseTritString reads one crisp trit per rune, '0' or '1'.
func ParseTritString(s string) (TritString, error) {
	values := make([]Trit, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			values = append(values, Lo)
		case '1':
			values = append(values, Hi)
		default:
			return TritString{}, fmt.Errorf("invalid trit %q at offset %d", r, i)
		}
	}
	return TritString{values: values}, nil
}

func FromByte(X TritByte) TritString {
	return NewTritString(X[:]...)
}

func (S TritString) Len() int {
	return len(S.values)
}

func (S TritString) At(i int) Trit {
	return S.values[i]
}

func (S TritString) Values() []Trit {
	return append([]Trit(nil), S.values...)
}

func (S TritString) Append(ts ...Trit) TritString {
	values := make([]Trit, 0, len(S.values)+len(ts))
	values = append(values, S.values...)
	return TritString{values: append(values, ts...)}
}

// Byte converts an 8 element string back into a TritByte.
func (S TritString) Byte() (X TritByte, err error) {
	if len(S.values) != ByteWidth {
		return X, fmt.Errorf("%w: have %d, want %d", ErrLengthMismatch, len(S.values), ByteWidth)
	}
	copy(X[:], S.values)
	return X, nil
}

// Lift applies fn position by position. Operands of different lengths are
// rejected; nothing is truncated or padded.
func (S TritString) Lift(O TritString, fn func(Trit, Trit) Trit) (TritString, error) {
	if len(S.values) != len(O.values) {
		return TritString{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(S.values), len(O.values))
	}

	values := make([]Trit, len(S.values))
	for i := range S.values {
		values[i] = fn(S.values[i], O.values[i])
	}
	return TritString{values: values}, nil
}

func (S TritString) BitOr(O TritString) (TritString, error) {
	return S.Lift(O, Trit.Or)
}

func (S TritString) BitAnd(O TritString) (TritString, error) {
	return S.Lift(O, Trit.And)
}

func (S TritString) BitXor(O TritString) (TritString, error) {
	return S.Lift(O, Trit.Xor)
}

func (S TritString) String() string {
	var sb strings.Builder
	for _, t := range S.values {
		sb.WriteRune(t.Rune())
	}
	return sb.String()
}
