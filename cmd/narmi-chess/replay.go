package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/engine"
)

func (a *app) replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [FILE]",
		Short: "Plays a movetext file through the rule pipeline",
		Long: heredoc.Doc(`
			replay applies every move token in FILE (or standard input) to a
			new game, in order, and stops at the first move a rule rejects.
			The number of plies played and the final game state are printed.
		`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readTokens(cmd, args)
			if err != nil {
				return err
			}
			p, err := a.pipeline()
			if err != nil {
				return err
			}

			moves := make([]string, len(tokens))
			for i, tok := range tokens {
				moves[i] = tok.Text
			}

			game, applied, err := engine.Replay(p, chess.NewGame(), moves)
			logrus.WithFields(logrus.Fields{"applied": applied, "total": len(moves)}).Debug("Replayed movetext")
			if err != nil {
				if werr := a.writer().Verdict(game, moves[applied], err); werr != nil {
					return werr
				}
				return fmt.Errorf("line %d: %w", tokens[applied].Line, err)
			}

			if a.cfg.JSON {
				return a.writer().Verdict(game, game.LastMove(), nil)
			}
			_, err = fmt.Fprintf(a.cfg.Output, "%d plies, state %s, %s to move\n",
				game.PlyCount(), game.State(), game.SideToMove())
			return err
		},
	}
}
