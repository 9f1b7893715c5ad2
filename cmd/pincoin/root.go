package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Boskolife/pincoin/internal/config"
	"github.com/Boskolife/pincoin/internal/logger"
	"github.com/Boskolife/pincoin/internal/prefs"
	"github.com/Boskolife/pincoin/internal/theme"
	"github.com/Boskolife/pincoin/internal/tui"
	"github.com/Boskolife/pincoin/internal/waitlist"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pincoin",
		Short:         "Pincoin renders the Pincoin landing experience in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanding(flags, log)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Landing content config file")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newThemeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runLanding(flags *rootFlags, log *logger.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the landing experience requires an interactive terminal")
	}

	if flags.verbose {
		verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err != nil {
			return err
		}
		log = verbose
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	store, err := openPrefs()
	if err != nil {
		return err
	}

	themes := theme.NewController(store, log)
	if !store.HasTheme() && cfg.Theme != "" {
		// Content-level default applies until the user toggles for themselves.
		themes.Set(prefs.Theme(cfg.Theme))
	}

	var deliverer waitlist.Deliverer
	if cfg.Waitlist.Endpoint != "" {
		deliverer = waitlist.NewHTTPDeliverer(cfg.Waitlist.Endpoint, nil)
	}
	wait := waitlist.NewService(deliverer, log)

	return tui.Run(cfg, themes, wait, log)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.ParseConfig(path)
}

func openPrefs() (*prefs.Store, error) {
	path, err := prefs.DefaultPath()
	if err != nil {
		return nil, err
	}
	return prefs.NewStore(path)
}
