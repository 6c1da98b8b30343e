package main

import (
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/narmi-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
	"github.com/lgbarn/narmi-chess-go/internal/worker"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [FILE]",
		Short: "Decodes every move in a movetext file",
		Long: heredoc.Doc(`
			check scans FILE (or standard input) for move tokens and decodes
			them in parallel. Move numbers, comments, NAGs, tag pairs and
			variations are skipped. Every token that fails to decode is
			reported with its line number, followed by a summary.

			With --validate each token is also run through the rule pipeline
			as a candidate first move of a new game. With --fail-fast checking
			stops at the first invalid token and only the tokens processed so
			far are reported.
		`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("workers") {
				a.cfg.Workers, _ = flags.GetInt("workers")
			}
			if flags.Changed("progress") {
				a.cfg.Progress, _ = flags.GetBool("progress")
			}
			if flags.Changed("cpuprofile") {
				a.cfg.CPUProfile, _ = flags.GetString("cpuprofile")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			if a.cfg.CPUProfile != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(a.cfg.CPUProfile), profile.Quiet).Stop()
			}

			tokens, err := readTokens(cmd, args)
			if err != nil {
				return err
			}

			process := worker.DecodeFunc()
			if validate, _ := flags.GetBool("validate"); validate {
				p, err := a.pipeline()
				if err != nil {
					return err
				}
				process = worker.ValidateFunc(p, chess.NewGame())
			}

			items := make([]worker.WorkItem, len(tokens))
			for i, tok := range tokens {
				items[i] = worker.WorkItem{Text: tok.Text, Line: tok.Line, Index: i}
			}

			var s *spinner.Spinner
			if a.cfg.Progress {
				s = spinner.New(spinner.CharSets[spinCharSet], 100*time.Millisecond, spinner.WithWriter(a.cfg.Log))
				s.Suffix = " checking movetext"
				s.Start()
			}

			opts := []worker.PoolOption{worker.WithWorkers(a.cfg.Workers), worker.WithBufferSize(2 * a.cfg.Workers)}
			if failFast, _ := flags.GetBool("fail-fast"); failFast {
				opts = append(opts, worker.WithFailFast())
			}

			start := time.Now()
			results := worker.Run(items, process, func(r worker.ProcessResult) {
				if !r.OK() {
					logrus.WithFields(logrus.Fields{"token": r.Text, "line": r.Line}).Debug(r.Err)
				}
			}, opts...)

			if s != nil {
				s.Stop()
			}
			logrus.WithFields(logrus.Fields{
				"tokens":  len(results),
				"workers": a.cfg.Workers,
				"elapsed": time.Since(start),
			}).Debug("Checked movetext")

			if err := a.writer().Report(results); err != nil {
				return err
			}
			for _, r := range results {
				if !r.OK() {
					return chesserrors.Wrap(chesserrors.ErrInvalidNotation, "movetext contains invalid moves")
				}
			}
			return nil
		},
	}

	cmd.Flags().IntP("workers", "w", a.cfg.Workers, "Number of parallel workers")
	cmd.Flags().Bool("progress", false, "Show a spinner while checking")
	cmd.Flags().String("cpuprofile", "", "Write a CPU profile to this directory")
	cmd.Flags().Bool("validate", false, "Also run every token through the rule pipeline")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first invalid token")

	return cmd
}

// spinCharSet indexes spinner.CharSets.
const spinCharSet = 14
