// SPDX-License-Identifier: MIT
// Package: fizzbuzz/sequence
//
// validators.go — bound and rule checks.
//
// Every check runs before the first element is produced. The first
// violation wins; see errors.go for the priority order.

package sequence

import "fmt"

// minBound is the smallest accepted sequence bound.
const minBound = 1

// validateBound ensures n >= minBound.
func validateBound(n int) error {
	if n < minBound {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidBound)
	}

	return nil
}

// Validate checks a single rule: both fields present, divisor > 0,
// word non-empty, in that order.
func (s RuleSpec) Validate() error {
	if s.Divisor == nil || s.Word == nil {
		return ErrMalformedRule
	}
	if *s.Divisor <= 0 {
		return fmt.Errorf("divisor=%d: %w", *s.Divisor, ErrInvalidDivisor)
	}
	if *s.Word == "" {
		return ErrInvalidWord
	}

	return nil
}

// ValidateRules validates specs in order and returns the first violation,
// annotated with the rule position.
func ValidateRules(specs []RuleSpec) error {
	for i, s := range specs {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("rule[%d]: %w", i, err)
		}
	}

	return nil
}
