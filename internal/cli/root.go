// Package cli wires the lazybench commands: a deterministic demo of
// fused evaluation and a configurable fused-vs-naive benchmark.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the lazybench CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lazybench",
		Short: "Compare fused lazy evaluation against naive elementwise loops",
		Long: `lazybench exercises the lazy expression library: compound assignment
from an expression tree walks every operand exactly once, with no
intermediate collections. The demo command shows the canonical
scenarios; the bench command times fused evaluation against the
equivalent one-pass-per-operator loops.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// newLogger builds the command logger, honoring the verbose flag.
func newLogger(w io.Writer, opts *RootOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
