package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/narmi-chess-go/internal/config"
	"github.com/lgbarn/narmi-chess-go/internal/output"
	"github.com/lgbarn/narmi-chess-go/internal/rules"
)

// app carries the resolved configuration into every subcommand.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.NewConfig()}

	root := &cobra.Command{
		Use:   "narmi-chess",
		Short: "Decode and validate algebraic chess notation",
		Long: heredoc.Doc(`
			narmi-chess decodes moves written in standard algebraic notation
			and checks them against the rules of a game in progress.

			Configuration is read from $XDG_CONFIG_HOME/narmi-chess/config.yaml
			when present. Flags override values from the file.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: a.setup,
	}

	// global flags
	root.PersistentFlags().String("config", "", "Read configuration from this file")
	root.PersistentFlags().Bool("json", false, "Write results as JSON")
	root.PersistentFlags().StringSlice("rules", nil, "Rule pipeline by name (default: all rules)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Show Debug Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.Version = programVersion

	root.AddCommand(a.decodeCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.checkCmd())
	root.AddCommand(a.replayCmd())
	root.AddCommand(a.pawnCmd())
	root.AddCommand(a.rulesCmd())

	return root
}

// setup loads the config file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	var err error
	if path, _ := flags.GetString("config"); path != "" {
		a.cfg, err = config.Load(path)
	} else {
		var found string
		a.cfg, found, err = config.Discover()
		if found != "" {
			logrus.WithField("path", found).Debug("Loaded configuration")
		}
	}
	if err != nil {
		return err
	}

	if flags.Changed("json") {
		a.cfg.JSON, _ = flags.GetBool("json")
	}
	if flags.Changed("rules") {
		a.cfg.Rules, _ = flags.GetStringSlice("rules")
	}
	if flags.Changed("verbose") {
		a.cfg.Verbosity = 1
	}
	if flags.Changed("trace") {
		a.cfg.Verbosity = 2
	}
	a.cfg.Output = cmd.OutOrStdout()
	a.cfg.Log = cmd.ErrOrStderr()

	logrus.SetOutput(a.cfg.Log)
	switch {
	case a.cfg.Verbosity >= 2:
		logrus.SetLevel(logrus.TraceLevel)
	case a.cfg.Verbosity == 1:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	return a.cfg.Validate()
}

func (a *app) writer() *output.Writer {
	return output.NewWriter(a.cfg.Output, a.cfg.JSON)
}

func (a *app) pipeline() (*rules.Pipeline, error) {
	p, err := a.cfg.Pipeline()
	if err != nil {
		return nil, err
	}
	logrus.WithField("rules", p.Names()).Trace("Rule pipeline")
	return p, nil
}
