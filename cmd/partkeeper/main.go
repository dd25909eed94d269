// Command partkeeper runs the component inventory console. It connects to
// PostgreSQL, applies migrations, and serves the interactive menu on stdin.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// see internal/config.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/partkeeper/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "partkeeper: %v\n", err)
		os.Exit(1)
	}
}
