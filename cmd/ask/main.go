package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"modelgw/internal/cli"
)

func main() {
	// Ctrl-C during a pending call cancels the context; exit with the
	// conventional signal-based code.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(cli.Options{})
	err := root.ExecuteContext(ctx)
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nInterrupted")
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
