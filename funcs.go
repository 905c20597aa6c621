package keycalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// MaxFactorial is the largest operand whose factorial is finite as a float64.
const MaxFactorial = 170

// pi is π rounded to float64, the value the π key puts on the display.
var pi, _ = bigfloat.Pi(new(big.Float).SetPrec(53)).Float64()

// ln is the natural logarithm with the float64 conventions for operands
// outside its domain: ln 0 is -Inf and ln of a negative number is NaN.
func ln(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	case x == 1:
		return 0
	case math.IsInf(x, 1):
		return x
	}
	// bigfloat.Log wants a little more precision than the result needs to
	// round correctly.
	r := new(big.Float).SetPrec(64)
	bigfloat.Log(r, new(big.Float).SetPrec(64).SetFloat64(x))
	f, _ := r.Float64()
	return f
}

// factorial computes n! for 0 <= n <= MaxFactorial. The product is exact
// until the final rounding to float64.
func factorial(n int) float64 {
	f, _ := bigFactorial(n).Float64()
	return f
}

// bigFactorial is n! by the recursive definition: 0! = 1! = 1, n! = n (n-1)!.
func bigFactorial(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	r := bigFactorial(n - 1)
	return r.Mul(r, big.NewInt(int64(n)))
}

// factorialOperand checks that x is a valid factorial operand and returns it
// as an int.
func factorialOperand(x float64, limit int) (int, bool) {
	if x < 0 || x > float64(limit) || x != math.Trunc(x) {
		return 0, false
	}
	return int(x), true
}
