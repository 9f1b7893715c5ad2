package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Boskolife/pincoin/internal/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a landing content config without launching the page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d panels\n", args[0], len(cfg.Panels))
			return nil
		},
	}
}
