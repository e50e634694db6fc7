// SPDX-License-Identifier: MIT
// Package: fizzbuzz/sequence
//
// config.go — per-call configuration resolved from options.

package sequence

// sequenceConfig holds the knobs of one Generate call. It is built fresh
// per call and never shared.
type sequenceConfig struct {
	rules    []RuleSpec // explicit rules; meaningful only when explicit is true
	explicit bool       // false ⇒ rules absent ⇒ DefaultRules()
}

// newSequenceConfig applies opts in order (later overrides earlier) and
// substitutes the default rule set when no explicit set was chosen.
func newSequenceConfig(opts ...Option) sequenceConfig {
	var cfg sequenceConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.explicit {
		defaults := DefaultRules()
		cfg.rules = make([]RuleSpec, len(defaults))
		for i, r := range defaults {
			cfg.rules[i] = r.Spec()
		}
	}

	return cfg
}
