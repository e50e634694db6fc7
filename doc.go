// Package fizzbuzz is a small toolkit for word-substitution sequences:
// count from 1 to N and replace every number divisible by a rule's divisor
// with that rule's word.
//
// 🚀 What is in the box?
//
//	A pure, zero-global-state library plus a command line:
//		• sequence/      — rules, validation and the lazy iter.Seq generator
//		• ruleset/       — rule lists from YAML, JSON, maps or "3:Fizz" pairs
//		• cmd/fizzbuzz/  — the CLI (flags or FIZZBUZZ_* environment variables)
//
// ✨ Why this shape?
//
//   - Fail fast – bound and rules are validated before the first element exists
//   - Lazy – elements are computed one at a time as you range; stop whenever
//   - Ordered rules – words concatenate in rule order (3→Fizz, 5→Buzz ⇒ FizzBuzz)
//   - Absent ≠ empty – no rules means the defaults, an empty set means plain numbers
//
// Quick example:
//
//	seq, _ := sequence.Generate(15)
//	for e := range seq {
//		fmt.Println(e)
//	}
//
//	go get github.com/katalvlaran/fizzbuzz/sequence
package fizzbuzz
