package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/rps/internal/app"
	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/logging"
)

var autoCmd = &cobra.Command{
	Use:   "auto <move>...",
	Short: "Play a match headlessly from a list of moves",
	Long: `Play a match without the TUI. Each argument is one of your moves
(rock, paper, scissors or r, p, s). Play stops as soon as a side reaches
the target; leftover moves are ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer closer.Close()

		moves, err := game.ParseMoves(args)
		if err != nil {
			return err
		}

		src := app.SourceFor(cfg.Match.Seed)
		if computer, _ := cmd.Flags().GetStringSlice("computer"); len(computer) > 0 {
			seq, err := game.ParseMoves(computer)
			if err != nil {
				return fmt.Errorf("--computer: %w", err)
			}
			src = game.NewSequenceSource(seq...)
		}

		m, err := game.NewMatch(cfg.Match.Target, src)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, game.ReadyMessage(cfg.Match.Target))
		for _, mv := range moves {
			rec, ok := m.RecordRound(mv)
			if !ok {
				break
			}
			fmt.Fprintln(out, game.LogLine(rec))
		}

		st := m.State()
		if winner, ok := st.Winner(); ok {
			fmt.Fprintln(out, game.MatchOverMessage(winner))
		} else {
			fmt.Fprintf(out, "Match unfinished after %d rounds.\n", st.Rounds())
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, game.Summary(st))

		logger.Info("auto match", "match", st.ID, "rounds", st.Rounds(),
			"you", st.HumanScore, "computer", st.ComputerScore, "complete", st.Complete)
		return nil
	},
}

func init() {
	autoCmd.Flags().StringSlice("computer", nil, "Fixed computer moves, cycled (e.g. r,p,s)")
}
