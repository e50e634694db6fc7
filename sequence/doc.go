// Package sequence generates word-substitution sequences ("FizzBuzz") lazily.
//
// 🚀 What it does
//
//	For every index i in 1..n the generator emits either i itself or the
//	concatenation of the words of every rule whose divisor divides i:
//
//	  1 2 Fizz 4 Buzz Fizz 7 8 Fizz Buzz 11 Fizz 13 14 FizzBuzz
//
// ✨ Key features:
//   - validation up front: bound and rules are checked before the first element
//   - lazy iter.Seq output: no look-ahead, safe for very large bounds, stop any time
//   - ordered, configurable rules; absent rules ⇒ 3→Fizz, 5→Buzz; empty rules ⇒ plain indices
//   - sentinel errors (ErrInvalidBound, ErrMalformedRule, ErrInvalidDivisor, ErrInvalidWord)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fizzbuzz/sequence"
//
//	seq, err := sequence.Generate(15)
//	if err != nil {
//	  // errors.Is(err, sequence.ErrInvalidBound) ...
//	}
//	for e := range seq {
//	  fmt.Println(e) // 1, 2, Fizz, ...
//	}
//
//	// custom rules, composed in rule order
//	seq, _ = sequence.Generate(6, sequence.WithRules(
//	  sequence.Rule{Divisor: 2, Word: "Even"},
//	  sequence.Rule{Divisor: 3, Word: "Three"},
//	)) // 1 Even Three Even 5 EvenThree
//
// Performance:
//
//   - Time:   O(n·R) for a full range over R rules
//   - Memory: O(R); nothing proportional to n is kept
//
// The package has no global mutable state and does no I/O.
package sequence
