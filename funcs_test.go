package keycalc

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestFactorialRecursion(t *testing.T) {
	want := big.NewInt(1)
	for n := 0; n <= MaxFactorial; n++ {
		if n > 1 {
			want.Mul(want, big.NewInt(int64(n)))
		}
		if got := bigFactorial(n); got.Cmp(want) != 0 {
			t.Fatalf("%d! = %v, want %v", n, got, want)
		}
		if n > 0 {
			prev := bigFactorial(n - 1)
			prev.Mul(prev, big.NewInt(int64(n)))
			if bigFactorial(n).Cmp(prev) != 0 {
				t.Fatalf("%d! != %d × %d!", n, n, n-1)
			}
		}
	}
}

func TestFactorialFloat(t *testing.T) {
	iter := 1.0
	for n := 0; n <= 20; n++ {
		if n > 1 {
			iter *= float64(n)
		}
		assert.Equal(t, iter, factorial(n), "%d!", n)
	}
	assert.False(t, math.IsInf(factorial(MaxFactorial), 0), "%d! overflowed", MaxFactorial)
	f, _ := bigFactorial(MaxFactorial + 1).Float64()
	assert.True(t, math.IsInf(f, 1), "%d! should overflow float64", MaxFactorial+1)
}

func TestFactorialOperand(t *testing.T) {
	cases := []struct {
		x  float64
		n  int
		ok bool
	}{
		{0, 0, true},
		{1, 1, true},
		{5, 5, true},
		{170, 170, true},
		{171, 0, false},
		{-1, 0, false},
		{3.5, 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
	}
	for _, c := range cases {
		n, ok := factorialOperand(c.x, MaxFactorial)
		assert.Equal(t, c.ok, ok, "factorialOperand(%g)", c.x)
		assert.Equal(t, c.n, n, "factorialOperand(%g)", c.x)
	}
	_, ok := factorialOperand(10, 5)
	assert.False(t, ok, "limit not applied")
}

func TestLn(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{1, 0},
		{math.E, 1},
		{10, math.Ln10},
		{2, math.Ln2},
		{0.5, -math.Ln2},
		{1e300, 300 * math.Ln10},
	}
	for _, c := range cases {
		got := ln(c.x)
		if !scalar.EqualWithinAbsOrRel(got, c.want, 1e-15, 1e-15) {
			t.Errorf("ln(%g) = %g, want %g", c.x, got, c.want)
		}
	}
	assert.True(t, math.IsNaN(ln(-1)))
	assert.True(t, math.IsNaN(ln(math.NaN())))
	assert.True(t, math.IsInf(ln(0), -1))
	assert.True(t, math.IsInf(ln(math.Inf(1)), 1))
}

func TestPi(t *testing.T) {
	assert.Equal(t, math.Pi, pi)
}
