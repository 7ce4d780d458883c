package cli

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-lazy-collections/internal/bench"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	Config string
	Runs   int
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time fused evaluation against naive per-operator loops",
		Long: `Time a d += a + b + c chain evaluated two ways: as a single fused
pass over all operands, and as one full pass per operator with
intermediate collections. Cases come from a YAML config file, or from
the built-in defaults when none is given.

Example:
  lazybench bench
  lazybench bench --config cases.yaml --runs 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to a YAML case file")
	cmd.Flags().IntVar(&opts.Runs, "runs", 0, "override the run count for every case")

	return cmd
}

func runBench(cmd *cobra.Command, opts *BenchOptions) error {
	log := newLogger(cmd.ErrOrStderr(), opts.RootOptions)

	cfg := bench.DefaultConfig()
	if opts.Config != "" {
		var err error
		cfg, err = bench.LoadConfig(opts.Config)
		if err != nil {
			return err
		}
		log.Debug("loaded config", "path", opts.Config, "cases", len(cfg.Cases))
	}
	if opts.Runs > 0 {
		for i := range cfg.Cases {
			cfg.Cases[i].Runs = opts.Runs
		}
	}

	reports, err := bench.NewRunner(log).RunAll(cfg)
	if err != nil {
		return err
	}
	return bench.RenderAll(cmd.OutOrStdout(), reports)
}
