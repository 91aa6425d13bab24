// Package cli implements the lkh command-line interface.
//
// One command does the work: "lkh solve FILE" parses a TSPLIB instance,
// builds the candidate table, and runs Lin–Kernighan trials. Options come
// from flags or an optional TOML config file; explicit flags win over the
// file. --verbose routes per-trial solver progress through a
// charmbracelet/log logger on stderr, keeping stdout clean for the
// resulting tour.
package cli

import (
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lkh/lk"
	"github.com/katalvlaran/lkh/tsplib"
)

// Execute runs the lkh CLI and returns the first command error.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Exposed for tests.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lkh",
		Short:         "lkh solves symmetric TSP instances with the Lin–Kernighan heuristic",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand())

	return root
}

// newLogger creates the stderr progress logger used in verbose mode.
func newLogger(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.DebugLevel,
	})
}

func newSolveCommand() *cobra.Command {
	var (
		cfgPath string
		cfg     = defaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a TSPLIB instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := mergeConfig(cfgPath, cfg, cmd)
			if err != nil {
				return err
			}

			return runSolve(cmd, args[0], merged)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file (flags override it)")
	cmd.Flags().IntVarP(&cfg.Trials, "trials", "t", cfg.Trials, "number of restart trials")
	cmd.Flags().IntVarP(&cfg.Neighbors, "neighbors", "k", cfg.Neighbors, "candidate neighbors per city")
	cmd.Flags().StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy, "candidate strategy: all|nearest|alpha|alpha-opt")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = fixed default)")
	cmd.Flags().Int64Var(&cfg.Optimum, "optimum", cfg.Optimum, "known optimum length (0 = unknown)")
	cmd.Flags().Float64Var(&cfg.Error, "error", cfg.Error, "acceptable relative error for early stop")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log per-trial progress to stderr")

	return cmd
}

// runSolve wires the packages together: parse, candidates, solver, print.
func runSolve(cmd *cobra.Command, path string, cfg Config) error {
	strategy, err := ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	ins, err := tsplib.ParseFile(path)
	if err != nil {
		return err
	}

	// AllNeighbors ignores k; the neighbor strategies cap it below n.
	k := cfg.Neighbors
	if k >= ins.Dimension() {
		k = ins.Dimension() - 1
	}

	candidates, err := lk.NewCandidateEdges(ins, strategy, k)
	if err != nil {
		return err
	}

	opts := lk.DefaultOptions()
	opts.Seed = cfg.Seed
	if cfg.Verbose {
		opts.Logger = newLogger(cmd.ErrOrStderr())
	}

	solver, err := lk.New(ins, candidates, opts)
	if err != nil {
		return err
	}

	tour, err := solver.FindBestTourContext(cmd.Context(), cfg.Trials, cfg.Optimum, cfg.Error)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "length: %d\n", lk.Length(ins, tour))
	fmt.Fprintf(out, "tour: %s\n", formatTour(tour.Sequence()))

	return nil
}

// formatTour renders the vertex order as space-separated 1-based city ids,
// matching the numbering used by instance files.
func formatTour(seq []int) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v+1)
	}

	return b.String()
}
