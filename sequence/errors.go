// SPDX-License-Identifier: MIT
// Package: fizzbuzz/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); never on the message text.
//   • Context (method, rule position, offending value) is attached with %w.
//   • Validation reports the FIRST violation only, in this priority:
//       ErrInvalidBound → per rule, in rule order:
//       ErrMalformedRule → ErrInvalidDivisor → ErrInvalidWord.

package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidBound indicates that the bound n is smaller than 1.
// Usage: if errors.Is(err, ErrInvalidBound) { /* ask for n >= 1 */ }.
var ErrInvalidBound = errors.New("sequence: N must be an integer >= 1")

// ErrMalformedRule indicates that a rule lacks its divisor or its word.
// Only RuleSpec (the loosely-typed form produced by decoders) can be malformed;
// a typed Rule always carries both fields.
var ErrMalformedRule = errors.New(`sequence: each rule must contain "divisor" and "word"`)

// ErrInvalidDivisor indicates that a rule's divisor is not a positive integer.
var ErrInvalidDivisor = errors.New(`sequence: "divisor" must be a positive integer`)

// ErrInvalidWord indicates that a rule's word is empty (or not text at all).
var ErrInvalidWord = errors.New(`sequence: "word" must be a non-empty string`)

// MethodGenerate prefixes every validation error.
const MethodGenerate = "Generate"

// sequenceErrorf prefixes a formatted message with the method name.
// The format is expected to carry a %w verb for the sentinel.
func sequenceErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
