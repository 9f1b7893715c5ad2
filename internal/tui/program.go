package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Boskolife/pincoin/internal/config"
	"github.com/Boskolife/pincoin/internal/logger"
	"github.com/Boskolife/pincoin/internal/theme"
	"github.com/Boskolife/pincoin/internal/waitlist"
)

// Run launches the landing experience and blocks until the user quits.
func Run(cfg *config.Config, themes *theme.Controller, wait *waitlist.Service, log *logger.Logger) error {
	model := NewModel(cfg, themes, wait, log)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
