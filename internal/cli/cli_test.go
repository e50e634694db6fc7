package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/katalvlaran/fizzbuzz/internal/cli"
	"github.com/stretchr/testify/assert"
)

// run executes the command and returns exit code, stdout and stderr.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

// TestExecute_Default prints the default rules up to a positional bound.
func TestExecute_Default(t *testing.T) {
	code, out, errOut := run(t, "15")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "1\n2\nFizz\n4\nBuzz\nFizz\n7\n8\nFizz\nBuzz\n11\nFizz\n13\n14\nFizzBuzz\n", out)
	assert.Empty(t, errOut)
}

// TestExecute_DefaultLimit uses the flag default when no bound is given.
func TestExecute_DefaultLimit(t *testing.T) {
	code, out, _ := run(t)
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, 100, bytes.Count([]byte(out), []byte("\n")))
}

// TestExecute_RuleSources covers each rule source and its formatting.
func TestExecute_RuleSources(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"pairs", []string{"-n", "6", "-r", "2:Even", "-r", "3:Three"}, "1\nEven\nThree\nEven\n5\nEvenThree\n"},
		{"doc_json", []string{"--rules", `[{"divisor": 2, "word": "Even"}]`, "-f", "json", "4"}, `[1,"Even",3,"Even"]` + "\n"},
		{"doc_yaml", []string{"--rules", "rules: [{divisor: 7, word: Bazz}]", "--format=jsonl", "-n", "7"}, "1\n2\n3\n4\n5\n6\n\"Bazz\"\n"},
		{"no_rules", []string{"--no-rules", "-f", "yaml", "3"}, "- 1\n- 2\n- 3\n"},
		{"empty_doc", []string{"--rules", "[]", "3"}, "1\n2\n3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, tc.args...)
			assert.Equal(t, cli.ExitOK, code, errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestExecute_ValidationErrors reports once on stderr and writes nothing to stdout.
func TestExecute_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"zero_bound", []string{"0"}, "N must be an integer >= 1"},
		{"negative_limit_flag", []string{"--limit=-1"}, "N must be an integer >= 1"},
		{"zero_divisor", []string{"-r", "0:Fizz", "5"}, `"divisor" must be a positive integer`},
		{"missing_word", []string{"--rules", "[{divisor: 3}]", "5"}, `each rule must contain "divisor" and "word"`},
		{"empty_word", []string{"-r", "3:", "5"}, `"word" must be a non-empty string`},
		{"bad_doc", []string{"--rules", "[{", "5"}, "cannot decode rules document"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, tc.args...)
			assert.Equal(t, cli.ExitError, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tc.msg)
			assert.Equal(t, 1, bytes.Count([]byte(errOut), []byte("\n")), "reported once")
		})
	}
}

// TestExecute_UsageErrors maps invocation mistakes to ExitUsage.
func TestExecute_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown_flag":    {"--bogus"},
		"too_many_args":   {"1", "2"},
		"non_integer_arg": {"ten"},
		"bad_format":      {"-f", "xml", "3"},
		"conflict":        {"--no-rules", "-r", "3:Fizz", "3"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			code, out, errOut := run(t, args...)
			assert.Equal(t, cli.ExitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "usage error")
		})
	}
}

// TestExecute_Environment binds FIZZBUZZ_* variables, with flags taking precedence.
func TestExecute_Environment(t *testing.T) {
	t.Setenv("FIZZBUZZ_LIMIT", "4")
	t.Setenv("FIZZBUZZ_NO_RULES", "true")

	code, out, _ := run(t)
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "1\n2\n3\n4\n", out)

	code, out, _ = run(t, "-n", "2")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "1\n2\n", out)
}

// TestExecute_EnvironmentRules reads whitespace-separated pairs from FIZZBUZZ_RULE.
func TestExecute_EnvironmentRules(t *testing.T) {
	t.Setenv("FIZZBUZZ_RULE", "2:Even 3:Three")

	code, out, _ := run(t, "6")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "1\nEven\nThree\nEven\n5\nEvenThree\n", out)
}

// TestExecute_Verbose logs resolved options to stderr only.
func TestExecute_Verbose(t *testing.T) {
	code, out, errOut := run(t, "-v", "3")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "1\n2\nFizz\n", out)
	assert.Contains(t, errOut, "resolved options")
	assert.Contains(t, errOut, `"rule_source": "default"`)
}

// TestExecute_Cancelled stops producing once the context is done.
func TestExecute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := cli.Execute(ctx, []string{"1000000"}, &stdout, &stderr)
	assert.Equal(t, cli.ExitError, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), context.Canceled.Error())
}

// TestExecute_Help prints usage to stdout.
func TestExecute_Help(t *testing.T) {
	code, out, _ := run(t, "--help")
	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out, "fizzbuzz [N] [flags]")
	assert.Contains(t, out, "--no-rules")
}
