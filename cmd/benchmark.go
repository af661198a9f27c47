package cmd

import (
	"fmt"
	"io"
	"strings"

	"mancala/experiments"
	"mancala/game"
	"mancala/meta"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type benchmarkOptions struct {
	config   experiments.Config
	minimax  bool
	aiPlayer int
	out      string
}

// addBenchmarkFlags registers the flags shared by benchmark and compare.
func addBenchmarkFlags(flags *pflag.FlagSet, opts *benchmarkOptions) {
	flags.IntVarP(&opts.config.Simulations, "sims", "n", meta.Simulations, "Number of games to simulate")
	flags.IntVarP(&opts.config.PitsPerPlayer, "pits", "p", meta.PitsPerPlayer, "Pits per player")
	flags.IntVarP(&opts.config.StonesPerPit, "stones", "s", meta.StonesPerPit, "Initial stones per pit")
	flags.Uint64Var(&opts.config.Seed, "seed", 1, "Seed of the random opponent")
	flags.IntVarP(&opts.config.Workers, "workers", "w", 0, "Games played concurrently (0 uses every CPU)")
	flags.IntVar(&opts.aiPlayer, "ai-player", int(game.Player1), "Side the AI plays, 1 or 2")
	flags.StringVar(&opts.config.Evaluation, "eval", "utility", fmt.Sprintf("Cutoff evaluation %v", game.EvaluationNames()))
	flags.StringVarP(&opts.out, "out", "o", "", "Export CSV records below this directory")
}

func (opts benchmarkOptions) resolve() experiments.Config {
	config := opts.config
	config.Pruning = !opts.minimax
	config.AIPlayer = game.Player(opts.aiPlayer)
	return config
}

func Benchmark() *cobra.Command {
	opts := benchmarkOptions{}

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Benchmark the AI against a random player",
		Long: heredoc.Doc(`
			benchmark simulates games between the search AI and a player that
			picks uniformly among its legal moves, then prints win rates, game
			lengths and search timings.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := experiments.RunBenchmark(cmd.Context(), opts.resolve())
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)

			if opts.out == "" {
				return nil
			}
			dir, err := summary.Export(opts.out, "benchmark")
			if err != nil {
				return err
			}
			log.Info().Msgf("exported records to %s", dir)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.config.Depth, "depth", "d", meta.BenchmarkDepth, "AI search depth in plies")
	flags.BoolVar(&opts.minimax, "minimax", false, "Use plain minimax instead of alpha-beta")
	addBenchmarkFlags(flags, &opts)

	return cmd
}

func Compare() *cobra.Command {
	opts := benchmarkOptions{}
	var depths []int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare AI performance across search depths",
		Long: heredoc.Doc(`
			compare runs one alpha-beta benchmark per depth against the same
			random opponent and prints the results side by side.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(depths) == 0 {
				return fmt.Errorf("at least one depth is required")
			}
			summaries, err := experiments.RunDepthComparison(cmd.Context(), depths, opts.resolve())
			if err != nil {
				return err
			}
			printComparison(cmd.OutOrStdout(), summaries)

			if opts.out == "" {
				return nil
			}
			for _, summary := range summaries {
				dir, err := summary.Export(opts.out, fmt.Sprintf("compare-depth-%d", summary.Config.Depth))
				if err != nil {
					return err
				}
				log.Info().Msgf("exported records to %s", dir)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&depths, "depths", []int{2, 5, 8}, "Search depths to compare")
	addBenchmarkFlags(flags, &opts)

	return cmd
}

func printSummary(out io.Writer, s experiments.Summary) {
	banner := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\nBENCHMARK RESULTS\n%s\n", banner, banner)
	fmt.Fprintf(out, "Configuration:\n")
	fmt.Fprintf(out, "  Algorithm:        %s\n", s.Config.Algorithm())
	fmt.Fprintf(out, "  Search Depth:     %d\n", s.Config.Depth)
	fmt.Fprintf(out, "  Evaluation:       %s\n", s.Config.Evaluation)
	fmt.Fprintf(out, "  AI Player:        %s\n", s.Config.AIPlayer)
	fmt.Fprintf(out, "  Simulations:      %d\n\n", s.Config.Simulations)

	fmt.Fprintf(out, "Win Rates:\n")
	fmt.Fprintf(out, "  AI Wins:          %d (%.1f%%)\n", s.AIWins, s.AIWinRate)
	fmt.Fprintf(out, "  Random Wins:      %d (%.1f%%)\n", s.RandomWins, s.RandomWinRate)
	fmt.Fprintf(out, "  Ties:             %d (%.1f%%)\n", s.Ties, s.TieRate)
	if s.Unfinished > 0 {
		fmt.Fprintf(out, "  Unfinished:       %d\n", s.Unfinished)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Game Statistics:\n")
	fmt.Fprintf(out, "  Avg Moves/Game:   %.1f (±%.1f)\n", s.MeanMoves, s.StdDevMoves)
	fmt.Fprintf(out, "  Avg Game Time:    %.3fs\n", s.MeanGameTime.Seconds())
	fmt.Fprintf(out, "  Avg AI Move Time: %.4fs\n", s.MeanAIMoveTime.Seconds())
	fmt.Fprintf(out, "  Avg Nodes/Move:   %.0f\n", s.MeanNodes)
	fmt.Fprintf(out, "  Total Game Time:  %.2fs\n", s.TotalTime.Seconds())
	fmt.Fprintf(out, "  Wall Time:        %.2fs\n", s.WallTime.Seconds())
	fmt.Fprintln(out, banner)
}

func printComparison(out io.Writer, summaries []experiments.Summary) {
	banner := strings.Repeat("=", 70)
	rule := strings.Repeat("-", 70)
	fmt.Fprintf(out, "\n%s\nDEPTH COMPARISON SUMMARY\n%s\n", banner, banner)
	fmt.Fprintf(out, "%-8s%-12s%-15s%-15s%-12s\n", "Depth", "Win Rate", "Avg Moves", "Avg Time/Move", "Avg Nodes")
	fmt.Fprintln(out, rule)
	for _, s := range summaries {
		fmt.Fprintf(out, "%-8d%-12s%-15.1f%-15s%-12.0f\n",
			s.Config.Depth,
			fmt.Sprintf("%.1f%%", s.AIWinRate),
			s.MeanMoves,
			fmt.Sprintf("%.4fs", s.MeanAIMoveTime.Seconds()),
			s.MeanNodes,
		)
	}
	fmt.Fprintln(out, banner)
}
