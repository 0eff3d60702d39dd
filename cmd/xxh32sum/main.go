// Command xxh32sum prints XXH32 checksums of files or standard input.
package main

import (
	"log/slog"
	"os"

	"go.dw1.io/xxh32/internal/cli"
)

func main() {
	if err := cli.NewSumCommand().Execute(); err != nil {
		slog.Error("xxh32sum failed", slog.Any("error", err))
		os.Exit(1)
	}
}
