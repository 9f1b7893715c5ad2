package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Boskolife/pincoin/internal/prefs"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Print or set the persisted theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(prefs.ThemeDark), string(prefs.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), store.Theme())
				return nil
			}

			next := prefs.Theme(args[0])
			if err := store.SetTheme(next); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", next)
			return nil
		},
	}
}
