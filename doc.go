// Package keycalc implements the evaluator behind a button-driven desktop
// calculator.
//
// The calculator has no precedence or brackets. An expression is either one
// function applied to one number, like "√16", "sin90" or "5!", or one binary
// operator between two numbers, like "6/3" or "2^10". Angles are in degrees.
// Results and errors are both display text, so a caller can put whatever
// Evaluate returns straight back on the screen.
//
// Display and Press model the rest of the keypad: each key press is a pure
// function from the current display to the next one.
//
package keycalc
