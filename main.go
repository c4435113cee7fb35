// ./main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/forkdrift/cmd"
)

// main is the entry point for the forkdrift CLI.
func main() {
	// A signal-aware context so a Ctrl+C aborts a long history walk
	// cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
