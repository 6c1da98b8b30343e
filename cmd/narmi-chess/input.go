package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
	"github.com/lgbarn/narmi-chess-go/internal/movetext"
	"github.com/lgbarn/narmi-chess-go/internal/source"
)

// readTokens scans the movetext named by args, or standard input when args
// is empty or "-". Files ending in .zst or .bz2 are decompressed.
func readTokens(cmd *cobra.Command, args []string) ([]movetext.Token, error) {
	var (
		f   *source.File
		err error
	)
	if len(args) > 0 && args[0] != "-" {
		f, err = source.Open(args[0])
	} else {
		f, err = source.NewReader(cmd.InOrStdin(), source.Plain)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := movetext.NewScanner(f)
	tokens := s.All()
	if err := s.Err(); err != nil {
		return nil, chesserrors.Wrap(err, "reading movetext")
	}

	logrus.WithFields(logrus.Fields{
		"path":   f.Path,
		"read":   f.BytesIn(),
		"data":   f.BytesOut(),
		"tokens": len(tokens),
	}).Debug("Scanned movetext")
	return tokens, nil
}
