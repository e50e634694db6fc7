// Command fizzbuzz prints a word-substitution sequence.
//
//	fizzbuzz 15
//	fizzbuzz -n 6 -r 2:Even -r 3:Three -f json
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/fizzbuzz/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
