// Package main provides the catalog CLI: it loads a seed of magazines,
// authors and articles and prints the demonstration queries.
// Usage: catalog [--seed file.yaml] [--author NAME] [--magazine NAME] [--output json]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
