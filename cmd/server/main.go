// Command server runs the renewal reminder backend: the daily reminder
// scheduler plus the admin HTTP API (health probes, manual trigger,
// reminder history, metrics).
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/renewal-manager/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
