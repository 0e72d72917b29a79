package trit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfAdderCrisp(t *testing.T) {
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			r := HalfAdder(FromBool(a), FromBool(b))
			assert.Equal(t, FromBool(a != b), r.Sum, fmt.Sprintf("sum %v+%v", a, b))
			assert.Equal(t, FromBool(a && b), r.Carry, fmt.Sprintf("carry %v+%v", a, b))
		}
	}
}

func TestFullAddCrisp(t *testing.T) {
	for n := 0; n < 8; n++ {
		a, b, c := FromBool(n&1 != 0), FromBool(n&2 != 0), FromBool(n&4 != 0)
		count := n&1 + (n>>1)&1 + (n>>2)&1

		r := FullAdd(a, b, c)
		assert.Equal(t, FromBool(count%2 == 1), r.Sum, fmt.Sprintf("sum of %03b", n))
		assert.Equal(t, FromBool(count >= 2), r.Carry, fmt.Sprintf("carry of %03b", n))
	}
}

func TestFullAddReducesToHalfAdder(t *testing.T) {
	values := []float64{0, 0.2, 0.5, 0.7, 1}
	for _, x := range values {
		for _, y := range values {
			a, b := MustScalar(x), MustScalar(y)
			h := HalfAdder(a, b)
			f := FullAdd(a, b, Lo)
			assert.True(t, h.Sum.Equal(f.Sum, tol), fmt.Sprintf("sum %v+%v: %v vs %v", a, b, h.Sum, f.Sum))
			assert.True(t, h.Carry.Equal(f.Carry, tol), fmt.Sprintf("carry %v+%v: %v vs %v", a, b, h.Carry, f.Carry))
		}
	}
}

func TestHalfAdderFuzzy(t *testing.T) {
	a, b := MustScalar(0.5), MustScalar(0.5)
	r := HalfAdder(a, b)
	assert.Equal(t, Fuzzy, r.Sum.Kind())
	assert.InDelta(t, 0.75*0.75, r.Sum.Scalar(), tol)
	assert.InDelta(t, 0.25, r.Carry.Scalar(), tol)
}

func TestByteFullAdd(t *testing.T) {
	sum, carry := ByteFullAdd(ByteFromUint8(200), ByteFromUint8(100))
	assert.Equal(t, ByteFromUint8(44), sum, "200+100 should wrap to 44")
	assert.Equal(t, Hi, carry, "200+100 should carry out")

	sum, carry = ByteFullAdd(ByteFromUint8(0), ByteFromUint8(0))
	assert.Equal(t, ByteFromUint8(0), sum)
	assert.Equal(t, Lo, carry)

	for _, pair := range [][2]int{{1, 1}, {127, 1}, {255, 1}, {255, 255}, {17, 42}, {128, 128}} {
		x, y := pair[0], pair[1]
		sum, carry = ByteFromUint8(uint8(x)).Add(ByteFromUint8(uint8(y)))
		assert.Equal(t, ByteFromUint8(uint8(x+y)), sum, fmt.Sprintf("%d+%d", x, y))
		assert.Equal(t, FromBool(x+y > 255), carry, fmt.Sprintf("%d+%d carry", x, y))
	}
}

func TestByteFullAddFuzzyCarry(t *testing.T) {
	X := ByteFromUint8(0)
	X[0] = MustScalar(0.5)
	Y := ByteFromUint8(1)

	sum, carry := ByteFullAdd(X, Y)
	assert.Equal(t, Lo, carry)
	assert.Equal(t, Fuzzy, sum[0].Kind())
	// The half carry out of position 0 leaks into position 1.
	assert.InDelta(t, 0.5, sum[1].Scalar(), tol)
	assert.Equal(t, Lo, sum[2])
}
