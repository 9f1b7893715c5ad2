package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Boskolife/pincoin/internal/waitlist"
)

// resizeSettleCmd emits resizeSettledMsg once the debounce window passes.
func resizeSettleCmd(gen int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return resizeSettledMsg{Gen: gen}
	})
}

// confirmOpenCmd emits confirmOpenMsg after the modal transition delay.
func confirmOpenCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return confirmOpenMsg{}
	})
}

// deliverCmd hands the email to the waitlist service off the UI loop. The
// outcome never gates a UI transition; the service logs failures itself.
func deliverCmd(svc *waitlist.Service, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		svc.Deliver(ctx, email)
		return deliveryDoneMsg{}
	}
}
