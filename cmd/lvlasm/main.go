// SPDX-License-Identifier: MIT

// Command lvlasm assembles short reads into contigs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvlasm/internal/app"
	"github.com/katalvlaran/lvlasm/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], app.Streams{Stdout: os.Stdout, Stderr: os.Stderr})
	stop()
	os.Exit(code)
}
