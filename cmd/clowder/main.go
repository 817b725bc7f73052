package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mewbox/clowder/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override clowder config path (optional)")
	timeoutSeconds := flag.Int("timeout", 0, "request timeout in seconds (optional, defaults to config value)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath}
	if secs := *timeoutSeconds; secs > 0 {
		opts.Timeout = time.Duration(secs) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "clowder: %v\n", err)
		return 1
	}
	return 0
}
