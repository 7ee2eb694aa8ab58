package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// The main function is now just a simple wrapper around run()
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run sets up and executes the application. It is designed to be testable.
func run(ctx context.Context, args []string) error {
	// Create a new context that is canceled when an interrupt or SIGTERM signal is received.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
