// Package cli implements the fizzbuzz command line.
//
// Flags are bound through viper, so every flag can also be given as a
// FIZZBUZZ_* environment variable (FIZZBUZZ_LIMIT, FIZZBUZZ_RULE,
// FIZZBUZZ_NO_RULES, ...). Explicit flags win over the environment.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/fizzbuzz/internal/render"
	"github.com/katalvlaran/fizzbuzz/ruleset"
	"github.com/katalvlaran/fizzbuzz/sequence"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// EnvPrefix prefixes every environment variable the command reads.
const EnvPrefix = "FIZZBUZZ"

// Flag names, also the viper keys.
const (
	flagLimit   = "limit"
	flagRule    = "rule"
	flagRules   = "rules"
	flagNoRules = "no-rules"
	flagFormat  = "format"
	flagVerbose = "verbose"
)

const defaultLimit = 100

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// Rule sources, reported in debug logs.
const (
	sourceDefault = "default"
	sourcePairs   = "rule"
	sourceDoc     = "rules"
	sourceNone    = "no-rules"
)

// Options is the resolved command configuration.
type Options struct {
	Limit    int
	Rules    []string // "<divisor>:<word>" pairs
	RulesDoc string   // inline YAML/JSON rule list
	NoRules  bool
	Format   string
	Verbose  bool
}

// Execute runs the command with args and returns the process exit code.
// Sequence output goes to stdout; diagnostics go to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
	if errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitError
}

// NewCommand builds the root command writing to stdout and stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "fizzbuzz [N]",
		Short: "Print a word-substitution sequence from 1 to N",
		Long: `Print the numbers 1..N, replacing every number divisible by a rule's
divisor with that rule's word. Words of several matching rules are
concatenated in rule order. Without rules, 3→Fizz and 5→Buzz apply.`,
		Example: `  fizzbuzz 15
  fizzbuzz -n 6 -r 2:Even -r 3:Three
  fizzbuzz --rules '[{"divisor": 7, "word": "Bazz"}]' -f json 14
  FIZZBUZZ_NO_RULES=true fizzbuzz 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(v, args)
			if err != nil {
				return err
			}

			logger := newLogger(opts.Verbose, stderr)
			defer func() { _ = logger.Sync() }()

			return run(cmd.Context(), opts, cmd.OutOrStdout(), logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	cmd.Args = func(c *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(c, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}

		return nil
	}

	flags := cmd.Flags()
	flags.IntP(flagLimit, "n", defaultLimit, "upper bound N (inclusive); a positional N overrides it")
	flags.StringArrayP(flagRule, "r", nil, `rule as "<divisor>:<word>", repeatable, applied in order`)
	flags.String(flagRules, "", "inline YAML or JSON rule list, e.g. '[{divisor: 3, word: Fizz}]'")
	flags.Bool(flagNoRules, false, "use an empty rule set: print plain numbers")
	flags.StringP(flagFormat, "f", render.Text.String(), "output format: text, json, jsonl or yaml")
	flags.BoolP(flagVerbose, "v", false, "log resolved options to stderr")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// BindPFlags only fails on a nil flag set
	_ = v.BindPFlags(flags)

	return cmd
}

// resolveOptions merges flags, environment and the positional bound.
func resolveOptions(v *viper.Viper, args []string) (Options, error) {
	opts := Options{
		Limit:    v.GetInt(flagLimit),
		Rules:    v.GetStringSlice(flagRule),
		RulesDoc: v.GetString(flagRules),
		NoRules:  v.GetBool(flagNoRules),
		Format:   v.GetString(flagFormat),
		Verbose:  v.GetBool(flagVerbose),
	}

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return opts, fmt.Errorf("%w: N must be an integer, got %q", ErrUsage, args[0])
		}
		opts.Limit = n
	}

	sources := 0
	for _, set := range []bool{opts.NoRules, opts.RulesDoc != "", len(opts.Rules) > 0} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return opts, fmt.Errorf("%w: --%s, --%s and --%s are mutually exclusive", ErrUsage, flagNoRules, flagRules, flagRule)
	}

	return opts, nil
}

// ruleOptions turns the selected rule source into generator options.
func ruleOptions(opts Options) ([]sequence.Option, string, error) {
	switch {
	case opts.NoRules:
		return []sequence.Option{sequence.WithRules()}, sourceNone, nil
	case opts.RulesDoc != "":
		specs, err := ruleset.Decode([]byte(opts.RulesDoc))
		if err != nil {
			return nil, sourceDoc, fmt.Errorf("--%s: %w", flagRules, err)
		}
		return []sequence.Option{sequence.WithRuleSpecs(specs...)}, sourceDoc, nil
	case len(opts.Rules) > 0:
		specs, err := ruleset.ParsePairs(opts.Rules)
		if err != nil {
			return nil, sourcePairs, fmt.Errorf("--%s: %w", flagRule, err)
		}
		return []sequence.Option{sequence.WithRuleSpecs(specs...)}, sourcePairs, nil
	default:
		return nil, sourceDefault, nil
	}
}

func run(ctx context.Context, opts Options, out io.Writer, logger *zap.Logger) error {
	format, err := render.ParseFormat(opts.Format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	seqOpts, source, err := ruleOptions(opts)
	if err != nil {
		logger.Debug("rejected rules", zap.String("rule_source", source), zap.Error(err))
		return err
	}

	logger.Debug("resolved options",
		zap.Int("limit", opts.Limit),
		zap.String("rule_source", source),
		zap.Stringer("format", format),
	)

	seq, err := sequence.Generate(opts.Limit, seqOpts...)
	if err != nil {
		logger.Debug("rejected input", zap.Error(err))
		return err
	}

	err = render.Write(out, untilDone(ctx, seq), format)
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		logger.Debug("interrupted", zap.Error(ctx.Err()))
		return ctx.Err()
	}

	logger.Debug("done", zap.Int("limit", opts.Limit))

	return nil
}

// untilDone stops pulling from seq once ctx is cancelled.
func untilDone(ctx context.Context, seq iter.Seq[sequence.Element]) iter.Seq[sequence.Element] {
	return func(yield func(sequence.Element) bool) {
		for e := range seq {
			if ctx.Err() != nil || !yield(e) {
				return
			}
		}
	}
}

// newLogger returns a console logger on w when verbose, a no-op logger otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)

	return zap.New(core).Named("fizzbuzz")
}
