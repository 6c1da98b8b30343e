package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
	"github.com/lgbarn/narmi-chess-go/internal/notation"
)

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode TOKEN...",
		Short: "Decodes moves written in algebraic notation",
		Long: heredoc.Doc(`
			decode parses each token as a single move and prints the fields
			it describes: the moving piece, its destination and source, and
			any capture, promotion, check or checkmate markers.

			Castling (O-O, 0-0-0) and results (1-0, 0-1, 1/2-1/2) are
			recognised as special forms.
		`),
		Example: "  narmi-chess decode e4 Nxf3+ exd8=Q# O-O-O",
		Args:    cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.writer()
			failed := 0
			for _, text := range args {
				n, err := notation.Decode(text)
				if err != nil {
					failed++
					logrus.WithField("token", text).Debug(err)
					if werr := w.DecodeError(text, 0, err); werr != nil {
						return werr
					}
					continue
				}
				if err := w.Notation(n); err != nil {
					return err
				}
			}

			if failed > 0 {
				return chesserrors.Wrapf(chesserrors.ErrInvalidNotation, "%d of %d tokens failed to decode", failed, len(args))
			}
			return nil
		},
	}
}
