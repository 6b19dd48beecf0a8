// Command percolate opens random sites on an N×N grid until it percolates,
// and estimates the percolation threshold over many trials.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	Execute(ctx)
}
