package main

import (
	"github.com/spf13/cobra"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	"github.com/lgbarn/narmi-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
)

func (a *app) pawnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pawn SQUARE",
		Short:   "Lists the squares a pawn could move to",
		Example: "  narmi-chess pawn e2\n  narmi-chess pawn --black d7\n  narmi-chess pawn --to e4 e2",
		Args:    cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseSquare(args[0])
			if err != nil {
				return err
			}

			colour := chess.White
			if black, _ := cmd.Flags().GetBool("black"); black {
				colour = chess.Black
			}

			if target, _ := cmd.Flags().GetString("to"); target != "" {
				to, err := parseSquare(target)
				if err != nil {
					return err
				}
				return a.writer().Reach(from, to, engine.CanPawnReach(colour, from, to))
			}
			return a.writer().Squares(engine.PawnTargets(colour, from))
		},
	}

	cmd.Flags().Bool("black", false, "Move the pawn as Black")
	cmd.Flags().String("to", "", "Only report whether the pawn can reach this square")
	return cmd
}

func parseSquare(text string) (chess.Square, error) {
	sq, ok := chess.ParseSquare(text)
	if !ok {
		return chess.Square{}, chesserrors.Wrapf(chesserrors.ErrInvalidNotation, "%q is not a square", text)
	}
	return sq, nil
}
