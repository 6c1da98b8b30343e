package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Lists the rules in the configured pipeline",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.pipeline()
			if err != nil {
				return err
			}
			for _, name := range p.Names() {
				if _, err := fmt.Fprintln(a.cfg.Output, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
