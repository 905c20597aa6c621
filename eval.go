package keycalc

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Evaluator evaluates display text. An Evaluator holds only its options, so
// it is safe to use concurrently.
type Evaluator struct {
	log     *zap.Logger
	maxfact int
}

// Option is an option used when creating an Evaluator.
type Option interface {
	evalOption(*Evaluator)
}

type (
	loggeropt struct{ l *zap.Logger }
	factopt   int
)

func (o loggeropt) evalOption(ev *Evaluator) { ev.log = o.l }
func (o factopt) evalOption(ev *Evaluator)   { ev.maxfact = int(o) }

// WithLogger sets the logger that records rejected evaluations. A nil logger
// disables logging.
func WithLogger(l *zap.Logger) Option {
	return loggeropt{l}
}

// FactorialLimit sets the largest operand accepted by !. Limits above
// MaxFactorial, or below zero, mean MaxFactorial.
func FactorialLimit(n int) Option {
	return factopt(n)
}

// NewEvaluator creates an Evaluator. By default it logs nothing and accepts
// factorials up to MaxFactorial.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := Evaluator{log: zap.NewNop(), maxfact: MaxFactorial}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.evalOption(&ev)
	}
	if ev.log == nil {
		ev.log = zap.NewNop()
	}
	if ev.maxfact < 0 || ev.maxfact > MaxFactorial {
		ev.maxfact = MaxFactorial
	}
	return &ev
}

// Compute evaluates display text and returns its numeric result. Errors are
// *EvalError values whose Kind gives the text to display instead.
//
// The first token that is not a number decides the kind of expression. A
// function like √, sin, or ! takes exactly one operand, and a binary operator
// takes one on each side. Text with no operator at all is valid only if it is
// a single number, which evaluates to itself.
func (ev *Evaluator) Compute(display string) (float64, error) {
	r, err := ev.compute(display)
	if err != nil {
		ev.log.Debug("rejected expression",
			zap.String("display", display),
			zap.Error(err),
		)
	}
	return r, err
}

func (ev *Evaluator) compute(display string) (float64, error) {
	if display == "" {
		return 0, &EvalError{Kind: EmptyExpression, Reason: "empty display"}
	}
	toks := Tokenize(display)
	op, at := OpNone, -1
	for i, tok := range toks {
		if isOperand(tok) {
			continue
		}
		if !IsFunction(tok.Text) && !IsOperator(tok.Text) {
			return 0, opError(tok, "unknown token")
		}
		op, at = LookupOp(tok.Text), i
		break
	}
	switch op.Arity() {
	case ArityNone:
		if len(toks) != 1 {
			return 0, &EvalError{Kind: EmptyExpression, Reason: strconv.Itoa(len(toks)) + " numbers and no operator"}
		}
		return operand(toks[0])
	case Prefix, Postfix:
		return ev.unary(op, at, toks)
	case Binary:
		return binary(op, at, toks)
	default:
		return 0, opError(toks[at], "cannot govern an expression")
	}
}

// unary evaluates a function applied to one operand. Prefix functions must
// come first and postfix ones last.
func (ev *Evaluator) unary(op Op, at int, toks []Token) (float64, error) {
	if len(toks) != 2 {
		return 0, exprError(toks[at], "wants one operand")
	}
	k := 1
	if op.Arity() == Postfix {
		k = 0
	}
	if at == k {
		return 0, exprError(toks[at], "operand on the wrong side of")
	}
	x, err := operand(toks[k])
	if err != nil {
		return 0, err
	}
	if op == OpFact {
		n, ok := factorialOperand(x, ev.maxfact)
		if !ok {
			return 0, exprError(toks[k], "factorial of")
		}
		return factorial(n), nil
	}
	return ops[op].unary(x), nil
}

// binary evaluates an operator between two operands.
func binary(op Op, at int, toks []Token) (float64, error) {
	if len(toks) != 3 || at != 1 {
		return 0, exprError(toks[at], "wants an operand on each side of")
	}
	x, err := operand(toks[0])
	if err != nil {
		return 0, err
	}
	y, err := operand(toks[2])
	if err != nil {
		return 0, err
	}
	if op == OpDiv && y == 0 {
		return 0, exprError(toks[2], "division by zero")
	}
	f := ops[op].binary
	if f == nil {
		return 0, opError(toks[at], "not a binary operator")
	}
	return f(x, y), nil
}

// isOperand reports whether discovery skips tok as a number. Constants count
// as numbers because they are replaced by their values.
func isOperand(tok Token) bool {
	if tok.Kind == TokenConst {
		return true
	}
	return IsNumeric(tok.Text) || isScientific(tok.Text)
}

// operand gets the value of a token in operand position.
func operand(tok Token) (float64, error) {
	if tok.Kind == TokenConst {
		return ops[LookupOp(tok.Text)].unary(0), nil
	}
	if !IsNumeric(tok.Text) && !isScientific(tok.Text) {
		return 0, exprError(tok, "not a number:")
	}
	return parseNum(tok.Text)
}

// parseNum parses a float. Values too large for float64 become infinities
// rather than errors.
func parseNum(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &EvalError{Kind: EmptyExpression, Token: s, Reason: "not a number:"}
	}
	return x, nil
}

// Evaluate evaluates display text and returns the text to display: the
// formatted result, or the message for the error.
func (ev *Evaluator) Evaluate(display string) string {
	r, err := ev.Compute(display)
	if err != nil {
		return Message(err)
	}
	return FormatResult(r)
}

// Immediate applies a function key to the whole display as one operand.
func (ev *Evaluator) Immediate(fn, display string) (float64, error) {
	r, err := immediate(fn, display)
	if err != nil {
		ev.log.Debug("rejected function key",
			zap.String("function", fn),
			zap.String("display", display),
			zap.Error(err),
		)
	}
	return r, err
}

func immediate(fn, display string) (float64, error) {
	if display == "" {
		return 0, &EvalError{Kind: EmptyExpression, Reason: "empty display"}
	}
	op := LookupOp(fn)
	if !ops[op].key {
		return 0, &EvalError{Kind: InvalidFunction, Token: fn, Reason: "not a function key:"}
	}
	x, err := parseNum(strings.TrimSpace(display))
	if err != nil {
		return 0, err
	}
	return ops[op].unary(x), nil
}

// ApplyImmediate applies a function key to the whole display and returns the
// text to display.
func (ev *Evaluator) ApplyImmediate(fn, display string) string {
	r, err := ev.Immediate(fn, display)
	if err != nil {
		return Message(err)
	}
	return FormatResult(r)
}

var std = NewEvaluator()

// Compute evaluates display text using the default Evaluator.
func Compute(display string) (float64, error) {
	return std.Compute(display)
}

// Evaluate evaluates display text using the default Evaluator and returns the
// text to display.
func Evaluate(display string) string {
	return std.Evaluate(display)
}

// ApplyImmediate applies a function key to the whole display using the
// default Evaluator and returns the text to display.
func ApplyImmediate(fn, display string) string {
	return std.ApplyImmediate(fn, display)
}
