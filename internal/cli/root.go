// Package cli contains the commands of the tensore binary.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/born-ml/tensore/internal/logger"
)

const (
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with TENSORE, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("TENSORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/tensore", "$HOME/.tensore", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}
	_ = viper.ReadInConfig()

	cmd := &cobra.Command{
		Use:   "tensore",
		Short: "Fixed-rank tensor demos",
		Long: `Demonstrations of the fixed-rank tensor container.

rows fills a square matrix and sorts its rows in alternating order.
sum fills a rank-4 tensor and adds it up in contiguous parts, optionally in parallel.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Root().PersistentFlags()
			MustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))
			MustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", "log format: 'text' or 'json'")
	flags.String(logLevelFlag, "info", "log level: 'none', 'debug', 'info', 'warn' or 'error'")

	return cmd
}

func newLogger() (*logger.ZapLogger, error) {
	return logger.NewLogger(viper.GetString(logFormatFlag), viper.GetString(logLevelFlag))
}
