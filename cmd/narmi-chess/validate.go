package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
)

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate MOVE",
		Short: "Checks a move against the rules of a game",
		Long: heredoc.Doc(`
			validate runs MOVE through the rule pipeline for a game in the
			given state with the given moves already played. The first rule
			that rejects the move is reported, or every failing rule with
			--all.

			States: not-started, started, stalemate, white-resigned,
			black-resigned, white-checkmate, black-checkmate.
		`),
		Example: heredoc.Doc(`
			  narmi-chess validate e4
			  narmi-chess validate --moves e4,e5 Nf3
			  narmi-chess validate --state white-checkmate Ke2
		`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			move := args[0]

			game, err := gameFromFlags(cmd)
			if err != nil {
				return err
			}
			p, err := a.pipeline()
			if err != nil {
				return err
			}

			w := a.writer()
			if all, _ := cmd.Flags().GetBool("all"); all {
				errs := p.ValidateAll(game, move)
				if len(errs) == 0 {
					return w.Verdict(game, move, nil)
				}
				for _, err := range errs {
					if werr := w.Verdict(game, move, err); werr != nil {
						return werr
					}
				}
				return chesserrors.Wrapf(chesserrors.ErrMoveRejected, "%s failed %d rules", move, len(errs))
			}

			err = p.Validate(game, move)
			if werr := w.Verdict(game, move, err); werr != nil {
				return werr
			}
			if err != nil {
				logrus.WithFields(logrus.Fields{"move": move, "state": game.State()}).Debug("Move rejected")
				return chesserrors.Wrapf(err, "%s", move)
			}
			return nil
		},
	}

	cmd.Flags().String("state", "", "Game state before the move (default: derived from --moves)")
	cmd.Flags().StringSlice("moves", nil, "Moves already played")
	cmd.Flags().Bool("all", false, "Report every failing rule")

	return cmd
}

// gameFromFlags builds the game snapshot described by --state and --moves.
func gameFromFlags(cmd *cobra.Command) (chess.Game, error) {
	moves, _ := cmd.Flags().GetStringSlice("moves")

	state := chess.NotStarted
	if len(moves) > 0 {
		state = chess.Started
	}
	if name, _ := cmd.Flags().GetString("state"); name != "" {
		parsed, ok := chess.ParseGameState(name)
		if !ok {
			return chess.Game{}, chesserrors.Wrapf(chesserrors.ErrUnknownGameState, "%q", name)
		}
		state = parsed
	}

	return chess.RestoreGame(state, moves), nil
}
