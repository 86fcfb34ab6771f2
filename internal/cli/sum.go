package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/born-ml/tensore/internal/parallel"
	"github.com/born-ml/tensore/tensor"
)

const (
	sumExtentFlag   = "extent"
	sumExtentConf   = "sum.extent"
	sumPartsFlag    = "parts"
	sumPartsConf    = "sum.parts"
	sumParallelFlag = "parallel"
	sumParallelConf = "sum.parallel"
	sumWorkersFlag  = "workers"
	sumWorkersConf  = "sum.workers"
)

// NewSumCommand returns the command that fills an extent^4 tensor with
// 0, 1, 2, ... and sums it in contiguous parts.
func NewSumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Sum a rank-4 tensor in contiguous parts",
		Long: `Fill an extent x extent x extent x extent tensor of float64 with 0, 1, 2, ...
and add it up in contiguous parts, printing every partial sum and the total.
With --parallel every part runs on its own goroutine.`,
		Args: cobra.NoArgs,
		RunE: runSum,
	}

	flags := cmd.Flags()
	flags.Int(sumExtentFlag, 40, "extent of every axis")
	flags.Int(sumPartsFlag, 8, "number of contiguous parts")
	flags.Bool(sumParallelFlag, false, "sum the parts concurrently")
	flags.Int(sumWorkersFlag, 0, "maximum concurrent parts (0 uses the CPU count)")
	cmd.PreRun = bindSumFlagsFunc(flags)

	return cmd
}

func bindSumFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		MustBindPFlag(sumExtentConf, flags.Lookup(sumExtentFlag))
		MustBindPFlag(sumPartsConf, flags.Lookup(sumPartsFlag))
		MustBindPFlag(sumParallelConf, flags.Lookup(sumParallelFlag))
		MustBindPFlag(sumWorkersConf, flags.Lookup(sumWorkersFlag))
	}
}

func runSum(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	extent := viper.GetInt(sumExtentConf)
	parts := viper.GetInt(sumPartsConf)
	if parts < 1 {
		return fmt.Errorf("parts must be positive, got %d", parts)
	}

	t, err := tensor.New[float64]([4]int{extent, extent, extent, extent})
	if err != nil {
		return err
	}
	defer t.Release()

	cfg := parallel.DefaultConfig()
	cfg.Enabled = viper.GetBool(sumParallelConf)
	if w := viper.GetInt(sumWorkersConf); w > 0 {
		cfg.NumWorkers = w
	}

	if cfg.Enabled {
		// Disjoint linear indices, so lock-free Set is safe here.
		parallel.For(t.Size(), func(i int) {
			_ = t.Set(i, float64(i))
		}, cfg)
	} else if err := tensor.Iota(t.Begin(), t.End(), 0); err != nil {
		return err
	}

	ranges := parallel.Partition(t.Size(), parts)
	results := make([]float64, len(ranges))
	start := time.Now()

	err = parallel.ForRanges(cmd.Context(), ranges, func(_ context.Context, i int, r parallel.Range) error {
		begin := t.CBegin()
		s, err := tensor.Accumulate(begin.Add(r.Start), begin.Add(r.End), 0)
		if err != nil {
			return fmt.Errorf("part %d [%d, %d): %w", i, r.Start, r.End, err)
		}
		results[i] = s
		log.Debug("partial sum", zap.Int("part", i), zap.Int("start", r.Start), zap.Int("end", r.End), zap.Float64("sum", s))
		return nil
	}, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total := 0.0
	for _, s := range results {
		fmt.Fprintf(out, "Partial sum : %g\n", s)
		total += s
	}
	fmt.Fprintf(out, "Total : %g\n", total)

	log.Info("summed tensor",
		zap.Int("elements", t.Size()),
		zap.Int("parts", len(ranges)),
		zap.Bool("parallel", cfg.Enabled),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
