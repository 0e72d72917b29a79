// Package trit implements fuzzy ternary logic over the product t-norm, with
// byte-wide bitwise operations and ripple-carry adders built from it.
package trit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrUnknownOperator = errors.New("unknown operator")

// Trit is a fuzzy ternary logic value: crisp true, crisp false, or a degree
// of truth strictly between the two. The zero value is Lo.
type Trit struct {
	kind Kind
	x    float64
}

var (
	Lo = Trit{kind: False}
	Hi = Trit{kind: True}
)

func FromBool(b bool) Trit {
	if b {
		return Hi
	}
	return Lo
}

// FromScalar maps 0.0 to Lo, 1.0 to Hi and anything strictly between to a
// fuzzy value. NaN and values outside [0, 1] are rejected with ok == false.
func FromScalar(x float64) (t Trit, ok bool) {
	switch {
	case x == 1.0:
		return Hi, true
	case x == 0.0:
		return Lo, true
	case 0.0 < x && x < 1.0:
		return Trit{kind: Fuzzy, x: x}, true
	}
	return Lo, false
}

// MustScalar is FromScalar for callers that already know x is in [0, 1].
// A value outside that range is a broken caller and panics; it is never
// clamped.
func MustScalar(x float64) Trit {
	t, ok := FromScalar(x)
	if !ok {
		panic(fmt.Sprintf("trit: scalar %v outside [0, 1]", x))
	}
	return t
}

func (A Trit) Kind() Kind {
	return A.kind
}

func (A Trit) Scalar() float64 {
	switch A.kind {
	case True:
		return 1.0
	case Fuzzy:
		return A.x
	default:
		return 0.0
	}
}

func (A Trit) IsCrisp() bool {
	return A.kind != Fuzzy
}

// Bool returns the crisp value of A. ok is false for fuzzy values.
func (A Trit) Bool() (b bool, ok bool) {
	switch A.kind {
	case True:
		return true, true
	case False:
		return false, true
	}
	return false, false
}

// Equal compares the scalar projections of A and B within tol.
func (A Trit) Equal(B Trit, tol float64) bool {
	return math.Abs(A.Scalar()-B.Scalar()) <= tol
}

func (A Trit) Not() Trit {
	return MustScalar(1.0 - A.Scalar())
}

// And is the product t-norm, not the minimum.
func (A Trit) And(B Trit) Trit {
	return MustScalar(A.Scalar() * B.Scalar())
}

// Or is the De Morgan dual of And: a + b - ab.
func (A Trit) Or(B Trit) Trit {
	return A.Not().And(B.Not()).Not()
}

func (A Trit) Nand(B Trit) Trit {
	return A.And(B).Not()
}

func (A Trit) Nor(B Trit) Trit {
	return A.Or(B).Not()
}

// Xor is "at least one" and "not both", expanded with the product algebra.
// For fuzzy operands it is not a + b - 2ab.
func (A Trit) Xor(B Trit) Trit {
	return A.Or(B).And(A.Nand(B))
}

func (A Trit) Xnor(B Trit) Trit {
	return A.Xor(B).Not()
}

// Doubt only accepts a proven true.
func (A Trit) Doubt() bool {
	return A.kind == True
}

// Assume accepts anything that is not a proven false.
func (A Trit) Assume() bool {
	return A.kind != False
}

// Round passes crisp values through; fuzzy values round half up.
func (A Trit) Round() bool {
	switch A.kind {
	case True:
		return true
	case False:
		return false
	}
	return A.x >= 0.5
}

func (A Trit) Rune() rune {
	switch A.kind {
	case True:
		return '1'
	case False:
		return '0'
	}
	return 'z'
}

func (A Trit) String() string {
	if A.kind == Fuzzy {
		return "z(" + strconv.FormatFloat(A.x, 'g', -1, 64) + ")"
	}
	return string(A.Rune())
}

func (A Trit) UnaryOp(op rune) Trit {
	switch op {
	case '~':
		return A.Not()
	default:
		return A
	}
}

func (A Trit) BinaryOp(op string, B Trit) (Trit, error) {
	switch op {
	case "&":
		return A.And(B), nil
	case "|":
		return A.Or(B), nil
	case "^":
		return A.Xor(B), nil
	case "~&":
		return A.Nand(B), nil
	case "~|":
		return A.Nor(B), nil
	case "~^", "^~":
		return A.Xnor(B), nil
	}
	return Lo, fmt.Errorf("%w %q", ErrUnknownOperator, op)
}
