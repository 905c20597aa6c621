package keycalc_test

import (
	"strconv"
	"testing"

	"github.com/zephyrtronium/keycalc"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("5+3")
	f.Add("√16")
	f.Add("5!")
	f.Add("sin90")
	f.Add("2*π")
	f.Add("1.0E-4")
	f.Add("Invalid expression")
	f.Fuzz(func(t *testing.T, s string) {
		r := keycalc.Evaluate(s)
		switch r {
		case "Invalid expression", "Invalid operator":
			return
		}
		if _, err := strconv.ParseFloat(r, 64); err != nil && r != "Infinity" && r != "-Infinity" {
			t.Errorf("Evaluate(%q) = %q, neither a message nor a number", s, r)
		}
	})
}

func FuzzPress(f *testing.F) {
	f.Add("12+3", "=")
	f.Add("", "del")
	f.Add("π", "del")
	f.Add("90", "sin")
	f.Fuzz(func(t *testing.T, display, label string) {
		keycalc.Press(keycalc.NewDisplay(display), label)
	})
}
