package keycalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies a rejected evaluation. Each kind has a fixed message
// which the calculator shows in place of a result.
type ErrorKind int8

const (
	// EmptyExpression covers every malformed expression: an empty display,
	// the wrong number of operands, an operand that is not a number, a
	// factorial operand out of range, or division by zero.
	EmptyExpression ErrorKind = iota
	// InvalidOperator is a token that is not a number, function, or
	// operator, or an operator that cannot govern the expression.
	InvalidOperator
	// InvalidFunction is a label that is not an immediate function.
	InvalidFunction
)

// Message returns the display text for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case EmptyExpression:
		return "Invalid expression"
	case InvalidOperator:
		return "Invalid operator"
	case InvalidFunction:
		return "Invalid function"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error makes each kind a sentinel so that errors.Is(err, kind) works for any
// *EvalError of that kind.
func (k ErrorKind) Error() string {
	return k.Message()
}

var (
	ErrInvalidExpression error = EmptyExpression
	ErrInvalidOperator   error = InvalidOperator
	ErrInvalidFunction   error = InvalidFunction
)

// EvalError is an error from evaluating display text.
type EvalError struct {
	// Kind is the class of the error, which decides its display text.
	Kind ErrorKind
	// Col is the 1-based rune column of the token that caused the error, or
	// 0 if the error concerns the expression as a whole.
	Col int
	// Token is the text of the token that caused the error, if any.
	Token string
	// Reason describes the problem for logs.
	Reason string
}

func (err *EvalError) Error() string {
	msg := err.Kind.Message()
	if err.Reason != "" {
		msg += ": " + err.Reason
	}
	if err.Token != "" {
		msg += " " + strconv.Quote(err.Token)
	}
	if err.Col > 0 {
		msg = strconv.Itoa(err.Col) + ": " + msg
	}
	return msg
}

// Unwrap returns the error's kind.
func (err *EvalError) Unwrap() error {
	return err.Kind
}

// Pos returns the column of the token that caused the error.
func (err *EvalError) Pos() int {
	return err.Col
}

// Message returns the display text for any error. Errors other than
// *EvalError display as an invalid expression.
func Message(err error) string {
	var k ErrorKind
	if errors.As(err, &k) {
		return k.Message()
	}
	return EmptyExpression.Message()
}

func exprError(tok Token, reason string) error {
	return &EvalError{Kind: EmptyExpression, Col: tok.Col, Token: tok.Text, Reason: reason}
}

func opError(tok Token, reason string) error {
	return &EvalError{Kind: InvalidOperator, Col: tok.Col, Token: tok.Text, Reason: reason}
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the rune column of the token that caused the error, or 0.
	Pos() int
}

var _ InputError = (*EvalError)(nil)
