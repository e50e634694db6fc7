// SPDX-License-Identifier: MIT
// Package: fizzbuzz/sequence
//
// types.go — Rule, RuleSpec and Element.

package sequence

import (
	"encoding/json"
	"strconv"
)

// Default rule words and divisors.
const (
	DefaultFizzDivisor = 3
	DefaultFizzWord    = "Fizz"
	DefaultBuzzDivisor = 5
	DefaultBuzzWord    = "Buzz"
)

// Rule substitutes Word for every index divisible by Divisor.
// A Rule is a plain value; copying it never shares state.
type Rule struct {
	Divisor int    // matches index i when i%Divisor == 0; must be > 0
	Word    string // appended to the element on match; must be non-empty
}

// Spec returns the loosely-typed form of r with both fields present.
func (r Rule) Spec() RuleSpec {
	d, w := r.Divisor, r.Word

	return RuleSpec{Divisor: &d, Word: &w}
}

// RuleSpec is a rule as it arrives from an untyped source (YAML, JSON, maps).
// A nil field means the key was missing from the source document.
type RuleSpec struct {
	Divisor *int    `json:"divisor,omitempty" yaml:"divisor,omitempty" mapstructure:"divisor"`
	Word    *string `json:"word,omitempty" yaml:"word,omitempty" mapstructure:"word"`
}

// Rule returns the typed rule. Missing fields come back as zero values,
// so call Validate first.
func (s RuleSpec) Rule() Rule {
	var r Rule
	if s.Divisor != nil {
		r.Divisor = *s.Divisor
	}
	if s.Word != nil {
		r.Word = *s.Word
	}

	return r
}

// DefaultRules returns a fresh copy of the default rule set: 3→Fizz, 5→Buzz.
func DefaultRules() []Rule {
	return []Rule{
		{Divisor: DefaultFizzDivisor, Word: DefaultFizzWord},
		{Divisor: DefaultBuzzDivisor, Word: DefaultBuzzWord},
	}
}

// Element is one value of a generated sequence: either the bare index
// (Word == "") or the concatenation of every matching rule's word.
type Element struct {
	Index int    // 1-based position in the sequence
	Word  string // concatenated words; empty when no rule matched
}

// IsNumber reports whether the element is its own index.
func (e Element) IsNumber() bool {
	return e.Word == ""
}

// Value returns the element as an int (no rule matched) or a string.
func (e Element) Value() any {
	if e.IsNumber() {
		return e.Index
	}

	return e.Word
}

// String renders the element the way it is printed: "7" or "Fizz".
func (e Element) String() string {
	if e.IsNumber() {
		return strconv.Itoa(e.Index)
	}

	return e.Word
}

// MarshalJSON encodes a number element as a JSON integer and a word element as a string.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Value())
}

// MarshalYAML encodes the element as a YAML integer or string scalar.
func (e Element) MarshalYAML() (interface{}, error) {
	return e.Value(), nil
}
