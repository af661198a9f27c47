package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "mancala",
		Short: "Play Mancala against a minimax AI or benchmark it",
		Long: heredoc.Doc(`
			mancala plays Kalah with a minimax / alpha-beta search AI.

			Play against the AI interactively, or measure how the AI fares
			against a random player over many simulated games.
		`),
		Example: heredoc.Doc(`
			mancala play --depth 5            Play against the AI searching 5 plies
			mancala benchmark --sims 100      Run 100 games at the default depth
			mancala compare --depths 2,5,8    Compare win rates across depths
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// --trace wins over --verbose
			switch {
			case cmd.Flag("trace").Changed:
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			case cmd.Flag("verbose").Changed:
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("verbose", "v", false, "Show Debug Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Benchmark())
	root.AddCommand(Compare())

	return root
}
