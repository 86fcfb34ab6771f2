package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/born-ml/tensore/matrix"
	"github.com/born-ml/tensore/tensor"
)

const (
	rowsSizeFlag = "size"
	rowsSizeConf = "rows.size"
)

// NewRowsCommand returns the command that fills a square matrix with
// 0, 1, 2, ... and sorts even rows ascending and odd rows descending.
func NewRowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Sort the rows of a square matrix in alternating order",
		Long:  "Fill a size x size matrix with 0, 1, 2, ..., print it, sort even rows ascending and odd rows descending, and print it again.",
		Args:  cobra.NoArgs,
		RunE:  runRows,
	}

	flags := cmd.Flags()
	flags.Int(rowsSizeFlag, 10, "number of rows and columns")
	cmd.PreRun = bindRowsFlagsFunc(flags)

	return cmd
}

func bindRowsFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		MustBindPFlag(rowsSizeConf, flags.Lookup(rowsSizeFlag))
	}
}

func runRows(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	size := viper.GetInt(rowsSizeConf)
	m, err := matrix.New[int](size, size)
	if err != nil {
		return fmt.Errorf("create %dx%d matrix: %w", size, size, err)
	}
	if err := tensor.Iota(m.Begin(), m.End(), 0); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := matrix.Format(out, m); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if err := matrix.SortRows(m); err != nil {
		return err
	}
	if err := matrix.Format(out, m); err != nil {
		return err
	}

	log.Debug("sorted rows", zap.Int("size", size), zap.Uint64("version", m.Version()))
	return nil
}
