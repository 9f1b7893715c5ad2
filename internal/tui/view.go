package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Boskolife/pincoin/internal/config"
	"github.com/Boskolife/pincoin/internal/engine"
	"github.com/Boskolife/pincoin/internal/prefs"
)

// footerHeight is the chrome below the panel viewport.
const footerHeight = 3

// Opacity thresholds for mapping the continuous fade onto terminal rendering.
const (
	opacityFadeBelow = 0.95
	opacityHideBelow = 0.15
)

// measureContent returns the rendered height of a panel's inner content.
func measureContent(panel config.PanelSection) int {
	return lipgloss.Height(renderInnerContent(panel, 0))
}

// renderInnerContent renders the scrollable inner content with one blank
// line between entries, shifted upward by skip lines (the fake-scroll
// translation).
func renderInnerContent(panel config.PanelSection, skip int) string {
	lines := make([]string, 0, len(panel.Content)*2)
	for i, line := range panel.Content {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, line)
	}

	if skip < 0 {
		skip = 0
	}
	if skip >= len(lines) {
		skip = len(lines) - 1
	}
	if skip > 0 {
		lines = lines[skip:]
	}

	return strings.Join(lines, "\n")
}

// View renders the landing page.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	styles := m.themes.Styles()
	viewport := m.metrics.ViewportHeight()

	page := m.renderCurrentPanel()
	page = lipgloss.Place(m.metrics.width, viewport, lipgloss.Center, lipgloss.Center, page)

	if id, open := m.modals.ActiveDialog(); open {
		dialog := m.renderDialog(id)
		page = lipgloss.Place(
			m.metrics.width, viewport,
			lipgloss.Center, lipgloss.Center,
			dialog,
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(styles.Overlay.GetForeground()),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, page, m.renderFooter())
}

// renderCurrentPanel renders the panel the viewport rests on, styled by the
// engine's evaluated state: pinned panels get the accent border, the exit
// transition fades and shrinks the frame, and the fake-scroll phase shifts
// the inner content.
func (m Model) renderCurrentPanel() string {
	ids := m.cfg.PanelIDs()
	idx := m.currentPanelIndex()

	state := engine.PanelState{Scale: 1, Opacity: 1}
	if st, ok := m.states.get(ids[idx]); ok {
		state = st
	}

	// Once a panel has faded out, show the next panel resting underneath.
	if state.Opacity <= opacityHideBelow && idx+1 < len(ids) {
		idx++
		state = engine.PanelState{Scale: 1, Opacity: 1}
		if st, ok := m.states.get(ids[idx]); ok {
			state = st
		}
	}

	panel, _ := m.cfg.Panel(ids[idx])
	return m.renderPanel(panel, state)
}

func (m Model) renderPanel(panel config.PanelSection, state engine.PanelState) string {
	styles := m.themes.Styles()

	frame := styles.Panel
	if state.Pinned {
		frame = styles.PanelPinned
	}
	if state.Opacity < opacityFadeBelow {
		frame = styles.PanelFaded
	}

	width := m.metrics.width - 8
	if state.Scale < 1 {
		width = int(float64(width) * state.Scale)
	}
	if width < 20 {
		width = 20
	}
	frame = frame.Width(width)

	sections := []string{styles.Title.Render(panel.Title)}
	for _, line := range panel.Body {
		sections = append(sections, styles.Subtitle.Render(line))
	}

	if panel.HasContent() {
		skip := int(-state.TranslateY)
		sections = append(sections, "", styles.Body.Render(renderInnerContent(panel, skip)))
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderDialog renders the open modal dialog.
func (m Model) renderDialog(id string) string {
	styles := m.themes.Styles()

	switch id {
	case dialogWaitlist:
		parts := []string{
			styles.ModalTitle.Render("Join the waitlist"),
			styles.Body.Render("Leave your email and we'll be in touch."),
			"",
			m.email.View(),
		}
		if m.formError != "" {
			parts = append(parts, "", styles.ErrorText.Render(m.formError))
		}
		parts = append(parts, "", styles.Hint.Render("enter submit · esc close"))
		return styles.ModalBox.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))

	case dialogConfirm:
		return styles.ModalBox.Render(lipgloss.JoinVertical(lipgloss.Center,
			styles.ModalTitle.Render("You're on the list!"),
			styles.ConfirmText.Render("We'll email you when early access opens."),
			"",
			styles.Hint.Render("enter close"),
		))
	}

	return ""
}

// renderFooter renders scroll progress, the theme indicator and key hints.
func (m Model) renderFooter() string {
	styles := m.themes.Styles()

	toggle := styles.ToggleOff.Render("light")
	if m.themes.Current() == prefs.ThemeDark {
		toggle = styles.ToggleOn.Render("dark")
	}

	status := fmt.Sprintf("%3.0f%%", m.ScrollPercent()*100)
	if m.submitting {
		status = m.spin.View() + " joining"
	}

	left := styles.Hint.Render("↑/↓ scroll · t theme · enter waitlist · q quit")
	right := styles.Hint.Render(status) + " " + toggle

	gap := m.metrics.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.FooterStatus.Width(m.metrics.width).
		Render(left + strings.Repeat(" ", gap) + right)
}
