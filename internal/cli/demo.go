package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-lazy-collections/lazy"
)

// NewDemoCommand creates the demo command. It runs the two canonical
// scenarios with fixed inputs so the output is always the same.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical fused-evaluation scenarios",
		Long: `Run two fixed scenarios and print their results:

  ints:     d += a + b + c over [1 2 3], [10 20 30], [100 200 300]
  strings:  d = a + b over ["x" "x"], ["y" "y"]`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, rootOpts)
		},
	}
}

func runDemo(cmd *cobra.Command, opts *RootOptions) error {
	out := cmd.OutOrStdout()
	log := newLogger(cmd.ErrOrStderr(), opts)

	a := lazy.WrapSlice([]int{1, 2, 3})
	b := lazy.WrapSlice([]int{10, 20, 30})
	c := lazy.WrapSlice([]int{100, 200, 300})
	d := []int{0, 0, 0}

	log.Debug("running ints scenario", "size", len(d))
	if err := lazy.AddAssign(lazy.WrapSlice(d), lazy.Add[int](lazy.Add[int](a, b), c)); err != nil {
		return fmt.Errorf("ints scenario: %w", err)
	}
	fmt.Fprintf(out, "ints:    d += a + b + c  ->  %v\n", d)

	xs := lazy.WrapSlice([]string{"x", "x"})
	ys := lazy.WrapSlice([]string{"y", "y"})
	concat := make([]string, 2)

	log.Debug("running strings scenario", "size", len(concat))
	if _, err := lazy.Into[string](lazy.WrapSlice(concat), lazy.Add[string](xs, ys)); err != nil {
		return fmt.Errorf("strings scenario: %w", err)
	}
	fmt.Fprintf(out, "strings: d = a + b       ->  %v\n", concat)

	return nil
}
