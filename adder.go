package trit

type AdderResult struct {
	Sum   Trit
	Carry Trit
}

func HalfAdder(a, b Trit) AdderResult {
	return AdderResult{
		Sum:   a.Xor(b),
		Carry: a.And(b),
	}
}

// FullAdd is the boolean full adder lifted into the fuzzy algebra: the carry
// is generated by a and b, or propagated through a^b by the carry in c.
func FullAdd(a, b, c Trit) AdderResult {
	z0 := a.Xor(b)
	return AdderResult{
		Sum:   c.Xor(z0),
		Carry: z0.And(c).Or(a.And(b)),
	}
}

// ByteFullAdd ripples FullAdd from position 0 up with a carry in of Lo and
// returns the sum word and the final carry out. Overflow is left to the
// caller.
func ByteFullAdd(X, Y TritByte) (Z TritByte, carry Trit) {
	carry = Lo
	for i := 0; i < ByteWidth; i++ {
		r := FullAdd(X[i], Y[i], carry)
		Z[i] = r.Sum
		carry = r.Carry
	}
	return
}
