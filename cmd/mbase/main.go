// Command mbase is a universal binary-to-text encode and decode tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zoobzio/mbase/cli"
)

// Set via ldflags at release time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, version)
	stop()
	os.Exit(code)
}
