package trit

import (
	"fmt"
	"strings"
)

const ByteWidth = 8

// TritByte is an 8-trit word. Index 0 is the least significant position.
type TritByte [ByteWidth]Trit

// ByteFromUint8 sets position i to Hi when bit i of n is set. The result is
// always crisp.
func ByteFromUint8(n uint8) (Z TritByte) {
	for i := uint(0); i < ByteWidth; i++ {
		Z[i] = FromBool((n>>i)&0x1 == 1)
	}
	return
}

func ByteOr(X, Y TritByte) (Z TritByte) {
	for i := range X {
		Z[i] = X[i].Or(Y[i])
	}
	return
}

func ByteAnd(X, Y TritByte) (Z TritByte) {
	for i := range X {
		Z[i] = X[i].And(Y[i])
	}
	return
}

func ByteXor(X, Y TritByte) (Z TritByte) {
	for i := range X {
		Z[i] = X[i].Xor(Y[i])
	}
	return
}

func ByteNot(X TritByte) (Z TritByte) {
	for i := range X {
		Z[i] = X[i].Not()
	}
	return
}

func (X TritByte) Or(Y TritByte) TritByte  { return ByteOr(X, Y) }
func (X TritByte) And(Y TritByte) TritByte { return ByteAnd(X, Y) }
func (X TritByte) Xor(Y TritByte) TritByte { return ByteXor(X, Y) }
func (X TritByte) Not() TritByte           { return ByteNot(X) }

func (X TritByte) Add(Y TritByte) (TritByte, Trit) {
	return ByteFullAdd(X, Y)
}

func (X TritByte) IsCrisp() bool {
	for _, t := range X {
		if !t.IsCrisp() {
			return false
		}
	}
	return true
}

// Uint8 is the inverse of ByteFromUint8. ok is false if any position is
// fuzzy.
func (X TritByte) Uint8() (n uint8, ok bool) {
	for i := uint(0); i < ByteWidth; i++ {
		b, crisp := X[i].Bool()
		if !crisp {
			return 0, false
		}
		if b {
			n |= 1 << i
		}
	}
	return n, true
}

// Rounded collapses every position with Trit.Round.
func (X TritByte) Rounded() (n uint8) {
	for i := uint(0); i < ByteWidth; i++ {
		if X[i].Round() {
			n |= 1 << i
		}
	}
	return
}

// String renders the most significant position first.
func (X TritByte) String() string {
	var sb strings.Builder
	for i := ByteWidth - 1; i >= 0; i-- {
		sb.WriteRune(X[i].Rune())
	}
	return sb.String()
}

func (X TritByte) Binary(op string, Y TritByte) (Z TritByte, err error) {
	for i := range X {
		if Z[i], err = X[i].BinaryOp(op, Y[i]); err != nil {
			return TritByte{}, err
		}
	}
	return Z, nil
}

// Unary applies "~" position-wise. The reduction operators "&", "|" and "^"
// (and their "~" complements) fold the word from the least significant
// position up into a single trit, returned in position 0 of the result
// with all other positions Lo.
func (X TritByte) Unary(op string) (Z TritByte, err error) {
	switch op {
	case "~":
		return X.Not(), nil
	case "&", "~&":
		Z[0] = X.reduce(Trit.And)
	case "|", "~|":
		Z[0] = X.reduce(Trit.Or)
	case "^", "~^":
		Z[0] = X.reduce(Trit.Xor)
	default:
		return TritByte{}, fmt.Errorf("%w %q", ErrUnknownOperator, op)
	}

	if strings.HasPrefix(op, "~") {
		Z[0] = Z[0].UnaryOp('~')
	}
	return Z, nil
}

func (X TritByte) reduce(fn func(Trit, Trit) Trit) Trit {
	v := X[0]
	for i := 1; i < ByteWidth; i++ {
		v = fn(v, X[i])
	}
	return v
}
