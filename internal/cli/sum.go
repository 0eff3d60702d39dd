package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dw1.io/xxh32"
)

// readSize is the size of each read from an input.
const readSize = 4096

const stdinName = "-"

// NewSumCommand returns the xxh32sum command. Without arguments it hashes
// standard input and prints the bare digest; with file arguments it prints
// one "<digest>  <name>" line per input.
func NewSumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xxh32sum [FILE]...",
		Short:         "Print XXH32 checksums",
		Long:          "Print the XXH32 checksum of each FILE as 8 lowercase hex digits. With no FILE, or when FILE is -, read standard input.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	v := newConfig(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		seed, err := parseSeed(v.GetString("seed"))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			sum, err := sumInput(cmd, stdinName, seed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%08x\n", sum)
			return err
		}

		for _, name := range args {
			sum, err := sumInput(cmd, name, seed)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "%08x  %s\n", sum, name); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}

func sumInput(cmd *cobra.Command, name string, seed uint32) (uint32, error) {
	var r io.Reader
	if name == stdinName {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, errors.Wrapf(err, "opening %s", name)
		}
		defer f.Close()
		r = f
	}

	sum, n, err := digest(r, seed)
	if err != nil {
		slog.Warn("input aborted", slog.String("input", name), slog.Int64("bytes", n))
		return 0, errors.Wrapf(err, "reading %s", name)
	}

	slog.Debug("hashed input",
		slog.String("input", name),
		slog.Int64("bytes", n),
		slog.Uint64("seed", uint64(seed)),
	)
	return sum, nil
}

// digest feeds r to a fresh hasher in readSize chunks until EOF. On a read
// error the bytes consumed so far are reported but no digest is returned.
func digest(r io.Reader, seed uint32) (uint32, int64, error) {
	h := xxh32.NewWithSeed(seed)
	buf := make([]byte, readSize)

	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			return h.Sum32(), total, nil
		}
		if err != nil {
			return 0, total, err
		}
	}
}
