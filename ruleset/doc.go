// Package ruleset decodes rule lists from loosely-typed sources into
// sequence.RuleSpec values.
//
// Sources:
//   - YAML or JSON documents (Decode): a top-level list of rule maps, or a
//     map with a "rules" list.
//   - generic maps (FromMaps): []map[string]any as produced by other decoders.
//   - compact pairs (ParsePairs): "3:Fizz", as typed on a command line.
//
// Field presence is preserved: a missing or null key is reported as
// sequence.ErrMalformedRule, a non-integer divisor as sequence.ErrInvalidDivisor,
// a non-string word as sequence.ErrInvalidWord. Rules are checked in order and
// the first violation is returned, exactly as sequence.Generate would report it.
// An empty list is an explicit empty rule set, never "use the defaults".
package ruleset
