// SPDX-License-Identifier: MIT
// Package: fizzbuzz/sequence
//
// options.go — functional options for Generate and Collect.
//
// Contract:
//   • Options only record choices; every value is checked later, in Generate,
//     so that errors surface in a fixed order instead of as panics.
//   • Last rule option wins.
//   • No option at all means "rules absent": DefaultRules() is substituted.
//     WithRules() with no arguments is an explicit EMPTY set, which is not the same thing.

package sequence

// Option customizes a single Generate call by mutating its sequenceConfig.
type Option func(*sequenceConfig)

// WithRules sets an explicit, ordered rule set. Calling it with no rules
// selects the empty set: every element is then emitted as its index.
func WithRules(rules ...Rule) Option {
	specs := make([]RuleSpec, len(rules))
	for i, r := range rules {
		specs[i] = r.Spec()
	}

	return WithRuleSpecs(specs...)
}

// WithRuleSpecs sets an explicit rule set in loosely-typed form, typically
// the output of the ruleset package. Missing fields are reported as
// ErrMalformedRule by Generate.
func WithRuleSpecs(specs ...RuleSpec) Option {
	// copy so later mutation of the caller's slice cannot leak in
	owned := make([]RuleSpec, len(specs))
	copy(owned, specs)

	return func(c *sequenceConfig) {
		c.rules = owned
		c.explicit = true
	}
}

// WithDefaultRules drops any previously selected rule set and falls back to DefaultRules.
func WithDefaultRules() Option {
	return func(c *sequenceConfig) {
		c.rules = nil
		c.explicit = false
	}
}
