package ruleset_test

import (
	"fmt"

	"github.com/katalvlaran/fizzbuzz/ruleset"
	"github.com/katalvlaran/fizzbuzz/sequence"
)

// ExampleDecode decodes a YAML rule list and generates with it.
func ExampleDecode() {
	doc := []byte(`
rules:
  - divisor: 2
    word: Even
  - divisor: 3
    word: Three
`)
	specs, err := ruleset.Decode(doc)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	got, _ := sequence.Collect(6, sequence.WithRuleSpecs(specs...))
	fmt.Println(got)
	// Output:
	// [1 Even Three Even 5 EvenThree]
}

// ExampleParsePairs shows the compact form and its error reporting.
func ExampleParsePairs() {
	_, err := ruleset.ParsePairs([]string{"3:Fizz", "0:Buzz"})
	fmt.Println(err)
	// Output:
	// rule[1] "0:Buzz": divisor=0: sequence: "divisor" must be a positive integer
}
