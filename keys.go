package keycalc

import "unicode/utf8"

// Display is the calculator's display text, its only state. Pressing a key
// produces a new Display; the old one is never modified.
type Display struct {
	text string
}

// NewDisplay creates a display showing text.
func NewDisplay(text string) Display {
	return Display{text: text}
}

// Text returns the text on the display.
func (d Display) Text() string {
	return d.text
}

func (d Display) String() string {
	return d.text
}

// Labels of the keys with special behavior.
const (
	KeyEquals = "="
	KeyClear  = "c"
	KeyDelete = "del"
	KeyPi     = "π"
)

// Keys is the keypad layout, row by row.
var Keys = [][]string{
	{"asin", "acos", "atan", KeyPi, KeyDelete},
	{"tan", "cot", "√", "^", "!"},
	{"7", "8", "9", "/", KeyClear},
	{"4", "5", "6", "*", "ln"},
	{"1", "2", "3", "-", "sin"},
	{"0", ".", KeyEquals, "+", "cos"},
}

// Press returns the display after pressing the key with the given label.
//
// Function keys like sin and ln apply to the whole display immediately. =
// evaluates the display as an expression. c clears it, del removes its last
// character, and π appends the value of π. Any other label is appended as is.
func (ev *Evaluator) Press(d Display, label string) Display {
	switch {
	case IsImmediate(label):
		return Display{ev.ApplyImmediate(label, d.text)}
	case label == KeyEquals:
		return Display{ev.Evaluate(d.text)}
	case label == KeyClear:
		return Display{}
	case label == KeyPi:
		return Display{d.text + FormatResult(pi)}
	case label == KeyDelete:
		if d.text == "" {
			return d
		}
		_, n := utf8.DecodeLastRuneInString(d.text)
		return Display{d.text[:len(d.text)-n]}
	default:
		return Display{d.text + label}
	}
}

// Replay presses each label in order, starting from an empty display.
func (ev *Evaluator) Replay(labels ...string) Display {
	var d Display
	for _, label := range labels {
		d = ev.Press(d, label)
	}
	return d
}

// Press returns the display after pressing a key, using the default
// Evaluator.
func Press(d Display, label string) Display {
	return std.Press(d, label)
}

// Replay presses each label in order from an empty display, using the default
// Evaluator.
func Replay(labels ...string) Display {
	return std.Replay(labels...)
}
