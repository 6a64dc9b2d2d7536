// Command audit-server runs the audit capture and change-reconstruction
// service: it ingests committed change sets, persists immutable change
// records, and serves the read API that reconstructs human-readable
// descriptions of each change.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hmhbrian/QuanLyDaoTaoNoiBo-NextJs-DotNet-sub002/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("audit-server: %v", err)
	}
}
