// Command spantree computes the minimum spanning tree of a weighted
// undirected graph read from a file or standard input.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
