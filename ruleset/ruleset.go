package ruleset

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/fizzbuzz/sequence"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrDecode indicates the input is not a rules document at all
// (syntax error, wrong top-level shape, empty input).
var ErrDecode = errors.New("ruleset: cannot decode rules document")

// Field keys of a rule map.
const (
	KeyDivisor = "divisor"
	KeyWord    = "word"
	KeyRules   = "rules"
)

// pairSeparator splits "<divisor>:<word>".
const pairSeparator = ":"

// Decode parses a YAML (or JSON) rules document, either a bare list or a
// mapping with a "rules" list:
//
//	rules:
//	  - divisor: 3
//	    word: Fizz
//	  - divisor: 5
//	    word: Buzz
//
// JSON works the same: {"rules": [{"divisor": 3, "word": "Fizz"}]}.
func Decode(data []byte) ([]sequence.RuleSpec, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if m, ok := stringKeys(doc); ok {
		inner, found := m[KeyRules]
		if !found {
			return nil, fmt.Errorf("%w: mapping without %q key", ErrDecode, KeyRules)
		}
		doc = inner
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list of rules, got %T", ErrDecode, doc)
	}

	maps := make([]map[string]any, len(items))
	for i, item := range items {
		m, isMap := stringKeys(item)
		if !isMap {
			return nil, fmt.Errorf("rule[%d]: %w", i, sequence.ErrMalformedRule)
		}
		maps[i] = m
	}

	return FromMaps(maps)
}

// stringKeys returns v as a string-keyed map. yaml.v3 produces
// map[any]any once a mapping has a non-string key; such keys are dropped,
// like any other key a rule does not use.
func stringKeys(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if key, ok := k.(string); ok {
				out[key] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// FromMaps converts rule maps into specs, validating each in order.
// Integer divisors may be any Go integer type or json.Number; floats are
// rejected even when integral.
func FromMaps(maps []map[string]any) ([]sequence.RuleSpec, error) {
	specs := make([]sequence.RuleSpec, 0, len(maps))
	for i, m := range maps {
		spec, err := fromMap(m)
		if err != nil {
			return nil, fmt.Errorf("rule[%d]: %w", i, err)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// fromMap decodes one rule map and classifies the first violation:
// presence, then divisor, then word.
func fromMap(m map[string]any) (sequence.RuleSpec, error) {
	var (
		spec sequence.RuleSpec
		md   mapstructure.Metadata
	)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &spec,
		Metadata:   &md,
		DecodeHook: strictIntHookFunc(),
	})
	if err != nil {
		return spec, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	decodeErr := dec.Decode(m)

	// null values decode to nothing and are as missing as absent keys
	if len(md.Unset) > 0 || m[KeyDivisor] == nil || m[KeyWord] == nil {
		return sequence.RuleSpec{}, sequence.ErrMalformedRule
	}
	if decodeErr != nil {
		// a field that failed to decode is left nil
		if spec.Divisor == nil {
			return sequence.RuleSpec{}, fmt.Errorf("divisor=%v: %w", m[KeyDivisor], sequence.ErrInvalidDivisor)
		}
		if spec.Word == nil {
			return sequence.RuleSpec{}, fmt.Errorf("word=%v: %w", m[KeyWord], sequence.ErrInvalidWord)
		}
		return sequence.RuleSpec{}, fmt.Errorf("%w: %v", ErrDecode, decodeErr)
	}

	return spec, spec.Validate()
}

var errNotAnInt = errors.New("not an int")

// strictIntHookFunc rejects values mapstructure would otherwise squeeze
// into an int: floats (truncated) and integers out of int range (wrapped).
func strictIntHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.Int {
			return data, nil
		}

		v := reflect.ValueOf(data)
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			return nil, fmt.Errorf("%w: %v", errNotAnInt, data)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if v.Uint() > math.MaxInt {
				return nil, fmt.Errorf("%w: %v overflows int", errNotAnInt, data)
			}
		case reflect.Int64:
			if v.Int() < math.MinInt || v.Int() > math.MaxInt {
				return nil, fmt.Errorf("%w: %v overflows int", errNotAnInt, data)
			}
		}

		return data, nil
	}
}

// ParsePairs parses compact "<divisor>:<word>" rules, e.g. "3:Fizz".
// The word is taken verbatim after the first separator.
func ParsePairs(pairs []string) ([]sequence.RuleSpec, error) {
	specs := make([]sequence.RuleSpec, 0, len(pairs))
	for i, p := range pairs {
		spec, err := parsePair(p)
		if err != nil {
			return nil, fmt.Errorf("rule[%d] %q: %w", i, p, err)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func parsePair(p string) (sequence.RuleSpec, error) {
	var spec sequence.RuleSpec

	rawDivisor, word, found := strings.Cut(p, pairSeparator)
	rawDivisor = strings.TrimSpace(rawDivisor)
	if !found || rawDivisor == "" {
		return spec, sequence.ErrMalformedRule
	}

	divisor, err := strconv.Atoi(rawDivisor)
	if err != nil {
		return spec, fmt.Errorf("divisor=%s: %w", rawDivisor, sequence.ErrInvalidDivisor)
	}

	spec.Divisor, spec.Word = &divisor, &word

	return spec, spec.Validate()
}
