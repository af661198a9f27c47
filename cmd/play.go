package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mancala/game"
	"mancala/meta"
	"mancala/searcher"
	"mancala/searcher/agent"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const spinnerCharSet = 14 // braille dots

type playOptions struct {
	depth      int
	aiFirst    bool
	pits       int
	stones     int
	pruning    bool
	evaluation string
	position   string
	noSpinner  bool
}

func Play() *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the AI",
		Long: heredoc.Doc(`
			play starts an interactive game against the AI. Enter the number of
			one of your pits (1 is your left-most pit) to sow it, or q to quit.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.depth, "depth", "d", meta.PlayDepth, "AI search depth in plies")
	flags.BoolVar(&opts.aiFirst, "ai-first", false, "Let the AI move first")
	flags.IntVarP(&opts.pits, "pits", "p", meta.PitsPerPlayer, "Pits per player")
	flags.IntVarP(&opts.stones, "stones", "s", meta.StonesPerPit, "Initial stones per pit")
	flags.BoolVar(&opts.pruning, "prune", true, "Use alpha-beta pruning")
	flags.StringVar(&opts.evaluation, "eval", "utility", fmt.Sprintf("Cutoff evaluation %v", game.EvaluationNames()))
	flags.StringVar(&opts.position, "position", "", "Start from a position such as 4,4,4,4,4,4,0,4,4,4,4,4,4,0/1")
	flags.BoolVar(&opts.noSpinner, "no-spinner", false, "Do not animate while the AI thinks")

	return cmd
}

func runPlay(in io.Reader, out io.Writer, opts playOptions) error {
	board, err := game.NewBoard(opts.pits, opts.stones)
	if opts.position != "" {
		board, err = game.Parse(opts.position)
	}
	if err != nil {
		return err
	}
	evaluate, err := game.LookupEvaluation(opts.evaluation)
	if err != nil {
		return err
	}

	ai := agent.NewSearchAgent(searcher.NewMinimax(
		searcher.WithPruning(opts.pruning),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	), opts.depth)

	human, computer := game.Player1, game.Player2
	if opts.aiFirst {
		human, computer = game.Player2, game.Player1
	}

	algorithm := "Alpha-Beta"
	if !opts.pruning {
		algorithm = "Minimax"
	}
	banner := strings.Repeat("=", 50)
	fmt.Fprintf(out, "\n%s\n   MANCALA - Human vs AI (%s, Depth %d)\n%s\n\n", banner, algorithm, opts.depth, banner)
	fmt.Fprintf(out, "You are %s\n", human)
	fmt.Fprintf(out, "Enter pit number (1-%d) to make a move.\nEnter 'q' to quit.\n\n", board.PitsPerPlayer())

	scanner := bufio.NewScanner(in)
	state := game.NewGameState(board)

	for !state.IsTerminal() {
		fmt.Fprintf(out, "%s\n\n", state)

		player := state.Board().Player()
		var move int
		if player == human {
			var quit bool
			move, quit = readMove(scanner, out, state.Board())
			if quit {
				fmt.Fprintln(out, "\nGame abandoned.")
				return nil
			}
		} else {
			fmt.Fprintln(out, "AI is thinking...")
			s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(out))
			if !opts.noSpinner {
				s.Start()
			}
			chosen, metric, err := ai.FindMove(state)
			s.Stop()
			if err != nil {
				return err
			}
			move = chosen
			fmt.Fprintf(out, "AI plays pit %d (took %.2fs, %d nodes)\n\n",
				state.Board().PitNumber(move), metric.Duration.Seconds(), metric.Nodes)
		}

		next, err := state.Play(move)
		if err != nil {
			return err
		}
		if !next.IsTerminal() && next.Board().Player() == player {
			if player == computer {
				fmt.Fprintln(out, "★ EXTRA TURN! AI's last stone landed in its store.")
			} else {
				fmt.Fprintln(out, "★ EXTRA TURN! Your last stone landed in your store. Go again!")
			}
		}
		state = next
	}

	fmt.Fprintf(out, "\n%s\n                  GAME OVER\n%s\n", banner, banner)
	fmt.Fprintf(out, "%s\n", state)

	p1, p2 := state.Board().StoreCounts()
	fmt.Fprintf(out, "\nFinal Score: Player 1: %d | Player 2: %d\n", p1, p2)

	winner, decided := state.Winner().Winner()
	switch {
	case !decided:
		fmt.Fprintln(out, "It's a tie!")
	case winner == human:
		fmt.Fprintln(out, "Congratulations! You win!")
	default:
		fmt.Fprintln(out, "AI wins. Better luck next time!")
	}
	return nil
}

// readMove prompts until the human enters a legal pit number. It reports quit
// on "q" or when the input is exhausted.
func readMove(scanner *bufio.Scanner, out io.Writer, board game.Board) (int, bool) {
	legal := make([]int, 0, board.PitsPerPlayer())
	for _, move := range board.LegalMoves() {
		legal = append(legal, board.PitNumber(move))
	}
	fmt.Fprintf(out, "Your valid moves: %v\n", legal)

	for {
		fmt.Fprint(out, "Your move: ")
		if !scanner.Scan() {
			return 0, true
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if input == "q" {
			return 0, true
		}

		number, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid pit number.")
			continue
		}
		index, err := board.PitIndex(board.Player(), number)
		if err != nil || !board.IsLegal(index) {
			fmt.Fprintf(out, "Invalid move. Choose from: %v\n", legal)
			continue
		}
		return index, false
	}
}
