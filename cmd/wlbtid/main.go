// Command wlbtid projects whole life insurance against buying term and investing the
// difference, prints or writes reports, manages stored inputs and serves the HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitSuccess = 0
	exitError   = 1
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return exitError
	}
	return exitSuccess
}
