package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.metrics.width = msg.Width
		m.metrics.height = msg.Height

		if !m.ready {
			// First size report: build the sequence immediately.
			m.ready = true
			m.rebuildSequence()
			return m, nil
		}

		// Debounce: rebuild only after the size has settled, and dispose the
		// prior registrations first so no duplicate timelines accumulate.
		m.resizeGen++
		return m, resizeSettleCmd(m.resizeGen, m.debounce)

	case resizeSettledMsg:
		if msg.Gen != m.resizeGen {
			// A newer resize superseded this tick.
			return m, nil
		}
		m.rebuildSequence()
		return m, nil

	case tea.KeyMsg:
		if _, open := m.modals.ActiveDialog(); open {
			return m.handleModalKeys(msg)
		}
		return m.handlePageKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case confirmOpenMsg:
		m.submitting = false
		m.modals.Open(dialogConfirm)
		return m, nil

	case deliveryDoneMsg:
		// Fire-and-forget: nothing to surface.
		return m, nil
	}

	return m, nil
}

// handlePageKeys handles keys while no dialog is open.
func (m Model) handlePageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "t":
		m.themes.Toggle()
		return m, nil

	case "up", "k":
		m.setScroll(m.scroll - scrollStep)
		return m, nil

	case "down", "j":
		m.setScroll(m.scroll + scrollStep)
		return m, nil

	case "pgup":
		m.setScroll(m.scroll - float64(m.metrics.ViewportHeight()))
		return m, nil

	case "pgdown", " ":
		m.setScroll(m.scroll + float64(m.metrics.ViewportHeight()))
		return m, nil

	case "home", "g":
		m.setScroll(0)
		return m, nil

	case "end", "G":
		m.setScroll(m.maxScroll)
		return m, nil

	case "enter", "w":
		return m.openWaitlist()
	}

	return m, nil
}

// openWaitlist opens the signup dialog with a fresh form.
func (m Model) openWaitlist() (tea.Model, tea.Cmd) {
	m.formError = ""
	m.email.SetValue("")
	m.email.Focus()
	m.modals.Open(dialogWaitlist)
	return m, nil
}

// handleModalKeys handles keys while a dialog is open. Page scrolling is
// locked for the duration.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modals.IsOpen(dialogConfirm) {
		switch msg.String() {
		case "enter", "esc", "q", " ":
			m.modals.CloseAll()
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.modals.CloseAll()
		return m, nil

	case "enter":
		return m.submitWaitlist()
	}

	// Typing clears a stale validation message.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
		m.formError = ""
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

// submitWaitlist validates the captured email. Validation failure keeps the
// modal open with a blocking message; success closes it, schedules the
// confirmation modal after the transition delay, and fires delivery.
func (m Model) submitWaitlist() (tea.Model, tea.Cmd) {
	email := m.email.Value()

	if err := m.wait.Validate(email); err != nil {
		m.formError = "Please enter a valid email address."
		m.log.WithFields(map[string]any{"reason": err.Error()}).Debug("waitlist validation failed")
		return m, nil
	}

	m.formError = ""
	m.modals.Close(dialogWaitlist)
	m.submitting = true

	return m, tea.Batch(
		m.spin.Tick,
		deliverCmd(m.wait, email),
		confirmOpenCmd(confirmDelay),
	)
}

// handleMouse maps wheel movement to scrolling and treats a click while the
// overlay is up as an overlay activation, which closes everything.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modals.OverlayActive() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.modals.CloseAll()
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.setScroll(m.scroll - scrollStep)
	case tea.MouseButtonWheelDown:
		m.setScroll(m.scroll + scrollStep)
	}

	return m, nil
}
