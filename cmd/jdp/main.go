// Package main is the entry point for the jdp CLI tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/persiancal/jdp/internal/cli"
)

func main() {
	// Ctrl-C dismisses an open dialog instead of killing the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
