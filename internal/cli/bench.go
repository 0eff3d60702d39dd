package cli

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dw1.io/xxh32"
)

const (
	defaultBenchSize  = "2GiB"
	defaultBenchTries = 3
)

// NewBenchCommand returns the xxh32bench command, which measures hashing
// throughput over an in-memory buffer.
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xxh32bench",
		Short:         "Measure XXH32 throughput",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().String("size", defaultBenchSize, "Buffer size, e.g. 512MiB")
	cmd.Flags().Int("tries", defaultBenchTries, "Number of timed runs")
	cmd.Flags().String("chunk", "0", "Write the buffer in chunks of this size; 0 writes it at once")
	v := newConfig(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		seed, err := parseSeed(v.GetString("seed"))
		if err != nil {
			return err
		}
		size, err := humanize.ParseBytes(v.GetString("size"))
		if err != nil {
			return errors.Wrap(err, "invalid size")
		}
		chunk, err := humanize.ParseBytes(v.GetString("chunk"))
		if err != nil {
			return errors.Wrap(err, "invalid chunk")
		}
		tries := v.GetInt("tries")
		if tries < 1 {
			return errors.Errorf("tries must be positive, got %d", tries)
		}

		buf := make([]byte, size)
		for i := range buf {
			buf[i] = byte(i)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Hashing %s in ", humanize.IBytes(size))

		best := time.Duration(math.MaxInt64)
		var sum uint32
		for range tries {
			start := time.Now()
			sum = hashBuffer(buf, int(chunk), seed)
			elapsed := max(time.Since(start), time.Nanosecond)
			best = min(best, elapsed)
			fmt.Fprintf(out, "%.3fs ", elapsed.Seconds())
		}
		fmt.Fprintln(out)

		throughput := uint64(float64(size) / best.Seconds())
		_, err = fmt.Fprintf(out, "Maximum throughput: %s/s\n", humanize.IBytes(throughput))

		slog.Debug("benchmark finished",
			slog.String("digest", fmt.Sprintf("%08x", sum)),
			slog.Int("tries", tries),
			slog.Duration("best", best),
		)
		return err
	}
	return cmd
}

func hashBuffer(buf []byte, chunk int, seed uint32) uint32 {
	if chunk <= 0 {
		return xxh32.Sum32WithSeed(buf, seed)
	}

	h := xxh32.NewWithSeed(seed)
	for len(buf) > 0 {
		n := min(chunk, len(buf))
		_, _ = h.Write(buf[:n])
		buf = buf[n:]
	}
	return h.Sum32()
}
