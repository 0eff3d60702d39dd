// Command xxh32bench reports XXH32 hashing throughput over an in-memory
// buffer.
package main

import (
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"go.dw1.io/xxh32/internal/cli"
)

func main() {
	if _, err := maxprocs.Set(); err != nil {
		slog.Error("setting GOMAXPROCS", slog.Any("error", err))
		os.Exit(1)
	}
	if err := cli.NewBenchCommand().Execute(); err != nil {
		slog.Error("xxh32bench failed", slog.Any("error", err))
		os.Exit(1)
	}
}
