// SPDX-License-Identifier: MIT
// Package: fizzbuzz/sequence
//
// sequence.go — Generate, Collect, Take and Apply.

package sequence

import (
	"iter"
	"strings"
)

// Generate validates n and the selected rule set, then returns a lazy
// sequence of n elements for indices 1..n.
//
// Algorithm:
//  1. Resolve options; no rule option ⇒ DefaultRules().
//  2. Reject n < 1 (ErrInvalidBound).
//  3. Validate rules in order (ErrMalformedRule, ErrInvalidDivisor, ErrInvalidWord).
//  4. Return an iter.Seq that, for i = 1..n, concatenates the words of every
//     rule with i%divisor == 0 (rule order) and yields Element{i, words}.
//
// No element is computed before validation succeeds, and none beyond the
// one the consumer pulls: breaking out of the range loop stops production.
// The returned sequence can be ranged over any number of times; each range
// starts again at 1.
//
// Complexity: O(n·len(rules)) time over a full range, O(len(rules)) memory.
func Generate(n int, opts ...Option) (iter.Seq[Element], error) {
	cfg := newSequenceConfig(opts...)

	if err := validateBound(n); err != nil {
		return nil, sequenceErrorf(MethodGenerate, "%w", err)
	}
	if err := ValidateRules(cfg.rules); err != nil {
		return nil, sequenceErrorf(MethodGenerate, "%w", err)
	}

	rules := make([]Rule, len(cfg.rules))
	for i, s := range cfg.rules {
		rules[i] = s.Rule()
	}

	return func(yield func(Element) bool) {
		// i == n ends the loop; i <= n would overflow at n == math.MaxInt
		for i := 1; ; i++ {
			if !yield(Apply(i, rules)) || i == n {
				return
			}
		}
	}, nil
}

// Apply computes the element at index i for an already validated rule set.
func Apply(i int, rules []Rule) Element {
	var acc strings.Builder
	for _, r := range rules {
		if i%r.Divisor == 0 {
			acc.WriteString(r.Word)
		}
	}

	return Element{Index: i, Word: acc.String()}
}

// collectPrealloc caps the up-front allocation of Collect and Take.
const collectPrealloc = 1 << 16

// Collect is Generate followed by materialising all n elements.
// Prefer Generate for large bounds.
func Collect(n int, opts ...Option) ([]Element, error) {
	seq, err := Generate(n, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]Element, 0, min(n, collectPrealloc))
	for e := range seq {
		out = append(out, e)
	}

	return out, nil
}

// Take returns at most the first k elements of seq and stops pulling
// once it has them. k <= 0 yields an empty slice.
func Take(seq iter.Seq[Element], k int) []Element {
	if k <= 0 {
		return []Element{}
	}
	out := make([]Element, 0, min(k, collectPrealloc))
	for e := range seq {
		out = append(out, e)
		if len(out) == k {
			break
		}
	}

	return out
}
