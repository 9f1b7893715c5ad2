package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles is the bundle of lipgloss styles the views render with. Swapping the
// bundle is the terminal equivalent of flipping the document's theme
// attribute.
type Styles struct {
	// Page chrome
	Background lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style

	// Panels
	Panel       lipgloss.Style
	PanelFaded  lipgloss.Style
	PanelPinned lipgloss.Style

	// Modal surface
	Overlay     lipgloss.Style
	ModalBox    lipgloss.Style
	ModalTitle  lipgloss.Style
	ErrorText   lipgloss.Style
	ConfirmText lipgloss.Style

	// Controls
	Button       lipgloss.Style
	ToggleOn     lipgloss.Style
	ToggleOff    lipgloss.Style
	FooterStatus lipgloss.Style
}

// DarkStyles returns the dark style bundle, the default appearance.
func DarkStyles() Styles {
	var (
		accent  = lipgloss.Color("#60a5fa")
		surface = lipgloss.Color("#0b1120")
		onBase  = lipgloss.Color("#e5e7eb")
		muted   = lipgloss.Color("#64748b")
		danger  = lipgloss.Color("#f87171")
		success = lipgloss.Color("#4ade80")
	)

	return Styles{
		Background: lipgloss.NewStyle().Background(surface).Foreground(onBase),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Subtitle:   lipgloss.NewStyle().Foreground(muted).Faint(true),
		Body:       lipgloss.NewStyle().Foreground(onBase),
		Hint:       lipgloss.NewStyle().Foreground(muted),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2),
		PanelFaded: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2).
			Faint(true),
		PanelPinned: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		Overlay: lipgloss.NewStyle().Foreground(muted).Faint(true),
		ModalBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 3).
			Align(lipgloss.Center),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		ErrorText:   lipgloss.NewStyle().Foreground(danger).Bold(true),
		ConfirmText: lipgloss.NewStyle().Foreground(success),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(surface).
			Background(accent).
			Padding(0, 2),
		ToggleOn:     lipgloss.NewStyle().Foreground(success).Bold(true),
		ToggleOff:    lipgloss.NewStyle().Foreground(muted),
		FooterStatus: lipgloss.NewStyle().Foreground(muted).BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(muted).PaddingTop(1).MarginTop(1),
	}
}

// LightStyles returns the light style bundle.
func LightStyles() Styles {
	var (
		accent  = lipgloss.Color("#2563eb")
		surface = lipgloss.Color("#f9fafb")
		onBase  = lipgloss.Color("#111827")
		muted   = lipgloss.Color("#94a3b8")
		danger  = lipgloss.Color("#dc2626")
		success = lipgloss.Color("#16a34a")
	)

	return Styles{
		Background: lipgloss.NewStyle().Background(surface).Foreground(onBase),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Subtitle:   lipgloss.NewStyle().Foreground(muted),
		Body:       lipgloss.NewStyle().Foreground(onBase),
		Hint:       lipgloss.NewStyle().Foreground(muted),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2),
		PanelFaded: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2).
			Faint(true),
		PanelPinned: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		Overlay: lipgloss.NewStyle().Foreground(muted).Faint(true),
		ModalBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 3).
			Align(lipgloss.Center),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		ErrorText:   lipgloss.NewStyle().Foreground(danger).Bold(true),
		ConfirmText: lipgloss.NewStyle().Foreground(success),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(surface).
			Background(accent).
			Padding(0, 2),
		ToggleOn:     lipgloss.NewStyle().Foreground(success).Bold(true),
		ToggleOff:    lipgloss.NewStyle().Foreground(muted),
		FooterStatus: lipgloss.NewStyle().Foreground(muted).BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(muted).PaddingTop(1).MarginTop(1),
	}
}
