package keycalc

import (
	"math"
	"strconv"
)

// Op is an operator or function the calculator knows. The set is closed:
// every label the calculator accepts maps to exactly one Op through ops.
type Op int8

const (
	OpNone Op = iota

	OpSqrt // √x
	OpSin  // sin x, x in degrees
	OpCos  // cos x, x in degrees
	OpTan  // tan x, x in degrees
	OpCot  // 1/tan x, x in degrees
	OpAsin // asin x, in degrees
	OpAcos // acos x, in degrees
	OpAtan // atan x, in degrees
	OpFact // x!
	OpLn   // ln x, only as an immediate function key

	OpAdd // x + y
	OpSub // x - y
	OpMul // x * y
	OpDiv // x / y
	OpPow // x ^ y

	OpPi // π

	opCount
)

// Arity describes how an Op takes its operands.
type Arity int8

const (
	ArityNone Arity = iota
	// Prefix ops take one operand after them, e.g. √16.
	Prefix
	// Postfix ops take one operand before them, e.g. 5!.
	Postfix
	// Binary ops take one operand on each side.
	Binary
	// Niladic ops are constants.
	Niladic
)

type opinfo struct {
	label string
	arity Arity
	// expr is whether the op may govern an expression evaluated with "=".
	expr bool
	// key is whether the op is an immediate function key, applied to the
	// whole display at once.
	key bool
	// unary is the rule for Prefix, Postfix, and Niladic ops.
	unary func(x float64) float64
	// binary is the rule for Binary ops.
	binary func(x, y float64) float64
}

var ops = [opCount]opinfo{
	OpNone: {},
	OpSqrt: {label: "√", arity: Prefix, expr: true, unary: math.Sqrt},
	OpSin:  {label: "sin", arity: Prefix, expr: true, key: true, unary: func(x float64) float64 { return math.Sin(radians(x)) }},
	OpCos:  {label: "cos", arity: Prefix, expr: true, key: true, unary: func(x float64) float64 { return math.Cos(radians(x)) }},
	OpTan:  {label: "tan", arity: Prefix, expr: true, key: true, unary: func(x float64) float64 { return math.Tan(radians(x)) }},
	OpCot:  {label: "cot", arity: Prefix, expr: true, key: true, unary: func(x float64) float64 { return 1 / math.Tan(radians(x)) }},
	OpAsin: {label: "asin", arity: Prefix, expr: true, key: true, unary: func(x float64) float64 { return degrees(math.Asin(x)) }},
	OpAcos: {label: "acos", arity: Prefix, expr: true, key: true, unary: func(x float64) float64 { return degrees(math.Acos(x)) }},
	OpAtan: {label: "atan", arity: Prefix, expr: true, key: true, unary: func(x float64) float64 { return degrees(math.Atan(x)) }},
	// Factorial needs its operand checked first, so the Evaluator applies it.
	OpFact: {label: "!", arity: Postfix, expr: true},
	OpLn:   {label: "ln", arity: Prefix, key: true, unary: ln},

	OpAdd: {label: "+", arity: Binary, expr: true, binary: func(x, y float64) float64 { return x + y }},
	OpSub: {label: "-", arity: Binary, expr: true, binary: func(x, y float64) float64 { return x - y }},
	OpMul: {label: "*", arity: Binary, expr: true, binary: func(x, y float64) float64 { return x * y }},
	// Division by zero is rejected before the rule runs.
	OpDiv: {label: "/", arity: Binary, expr: true, binary: func(x, y float64) float64 { return x / y }},
	OpPow: {label: "^", arity: Binary, expr: true, binary: math.Pow},

	OpPi: {label: "π", arity: Niladic, unary: func(float64) float64 { return pi }},
}

// labels maps each label to its op. It is built from ops so the two cannot
// disagree.
var labels = func() map[string]Op {
	m := make(map[string]Op, opCount)
	for op := OpNone + 1; op < opCount; op++ {
		m[ops[op].label] = op
	}
	return m
}()

// LookupOp returns the op for a key label or token. If there is no such op,
// the result is OpNone.
func LookupOp(label string) Op {
	return labels[label]
}

func (op Op) String() string {
	if op <= OpNone || op >= opCount {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return ops[op].label
}

// Arity returns how op takes its operands.
func (op Op) Arity() Arity {
	if op <= OpNone || op >= opCount {
		return ArityNone
	}
	return ops[op].arity
}

// IsNumeric reports whether tok is a plain decimal number: an optional minus
// sign, digits, and optionally a point followed by more digits.
func IsNumeric(tok string) bool {
	i := 0
	if i < len(tok) && tok[i] == '-' {
		i++
	}
	k := digits(tok, i)
	if k == i {
		return false
	}
	if k == len(tok) {
		return true
	}
	if tok[k] != '.' {
		return false
	}
	i = k + 1
	k = digits(tok, i)
	return k > i && k == len(tok)
}

// isScientific reports whether tok is a numeric mantissa followed by an
// exponent, the form of very large and very small results.
func isScientific(tok string) bool {
	for i := 0; i < len(tok); i++ {
		if tok[i] != 'E' && tok[i] != 'e' {
			continue
		}
		j := i + 1
		if j < len(tok) && tok[j] == '-' {
			j++
		}
		k := digits(tok, j)
		return IsNumeric(tok[:i]) && k > j && k == len(tok)
	}
	return false
}

// digits returns the index of the first non-digit byte of s at or after i.
func digits(s string, i int) int {
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}

// IsOperator reports whether tok is one of the binary operators + - * / ^.
func IsOperator(tok string) bool {
	return LookupOp(tok).Arity() == Binary
}

// IsFunction reports whether tok is one of the functions that can govern an
// expression: √ sin cos tan cot asin acos atan !.
func IsFunction(tok string) bool {
	op := LookupOp(tok)
	return ops[op].expr && op.IsUnary()
}

// IsUnary reports whether op takes exactly one operand.
func (op Op) IsUnary() bool {
	a := op.Arity()
	return a == Prefix || a == Postfix
}

// IsImmediate reports whether label is a function key that applies to the
// whole display as soon as it is pressed.
func IsImmediate(label string) bool {
	return ops[LookupOp(label)].key
}

// IsUnaryOperator reports whether tok names an op that consumes exactly one
// operand in an expression.
func IsUnaryOperator(tok string) bool {
	return IsFunction(tok)
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}
