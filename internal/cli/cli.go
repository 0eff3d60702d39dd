// Package cli implements the xxh32sum and xxh32bench commands.
package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.dw1.io/xxh32/internal/logging"
)

// EnvPrefix prefixes the environment variables that back every flag, so
// --log-level is also read from XXH32_LOG_LEVEL.
const EnvPrefix = "XXH32"

// newConfig binds the flags of cmd to a fresh viper instance with
// environment lookup and installs the logger before the command runs.
func newConfig(cmd *cobra.Command) *viper.Viper {
	cmd.PersistentFlags().String("seed", "0", "Hash seed, decimal or 0x-prefixed hex")
	cmd.PersistentFlags().String("log-level", logging.DefaultLogLevel.String(), "Log level: debug, info, warn or error")
	cmd.PersistentFlags().Bool("log-json", false, "Print logs in JSON format")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return errors.Wrap(err, "binding flags")
		}
		level, err := logging.ParseLogLevel(v.GetString("log-level"))
		if err != nil {
			return err
		}
		logging.ConfigureLogger(cmd.ErrOrStderr(), level, v.GetBool("log-json"))
		return nil
	}
	return v
}

func parseSeed(s string) (uint32, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid seed %q", s)
	}
	return uint32(seed), nil
}
