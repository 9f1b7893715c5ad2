// Package tui renders the Pincoin landing experience as a full-screen
// terminal program: panels in a scroll sequence, a theme toggle, and the
// waitlist modal.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Boskolife/pincoin/internal/config"
	"github.com/Boskolife/pincoin/internal/engine"
	"github.com/Boskolife/pincoin/internal/logger"
	"github.com/Boskolife/pincoin/internal/modal"
	"github.com/Boskolife/pincoin/internal/sequence"
	"github.com/Boskolife/pincoin/internal/theme"
	"github.com/Boskolife/pincoin/internal/waitlist"
)

// Dialog identifiers for the modal controller.
const (
	dialogWaitlist = "waitlist-signup"
	dialogConfirm  = "waitlist-confirm"
)

// confirmDelay is the visual-transition gap between the signup modal closing
// and the confirmation modal opening.
const confirmDelay = 300 * time.Millisecond

// scrollStep is the per-keypress scroll distance in cells.
const scrollStep = 2

// trailingUnscheduled is how many trailing panels get no exit animation; the
// last panel is the final resting state.
const trailingUnscheduled = 1

// Model is the landing page program state. All mutation happens in Update;
// state shared with engine callbacks lives behind pointers so model copies
// observe the same data.
type Model struct {
	cfg     *config.Config
	themes  *theme.Controller
	modals  *modal.Controller
	wait    *waitlist.Service
	seq     *sequence.Sequencer
	eng     *engine.Engine
	metrics *viewMetrics
	log     *logger.Logger

	ready bool

	// Scroll state
	scroll    float64
	maxScroll float64
	tops      map[string]float64

	// Engine output, shared with the applier sink
	states *stateSink

	// Resize debouncing
	debounce  time.Duration
	resizeGen int

	// Waitlist form state
	email      textinput.Model
	formError  string
	submitting bool
	spin       spinner.Model
}

// stateSink receives evaluated panel states from the engine.
type stateSink struct {
	states map[string]engine.PanelState
}

// Apply implements engine.Applier.
func (s *stateSink) Apply(panelID string, state engine.PanelState) {
	s.states[panelID] = state
}

func (s *stateSink) get(panelID string) (engine.PanelState, bool) {
	st, ok := s.states[panelID]
	return st, ok
}

// viewMetrics implements sequence.Metrics from the current window size and
// the rendered panel content.
type viewMetrics struct {
	cfg    *config.Config
	width  int
	height int
}

// ViewportHeight returns the cells available to a panel once the footer
// chrome is subtracted.
func (v *viewMetrics) ViewportHeight() int {
	h := v.height - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// ContentHeight measures the rendered inner content of the panel. ok is
// false when the panel has no inner content.
func (v *viewMetrics) ContentHeight(panelID string) (int, bool) {
	panel, found := v.cfg.Panel(panelID)
	if !found || !panel.HasContent() {
		return 0, false
	}
	return measureContent(panel), true
}

// NewModel wires the landing page model from its collaborators.
func NewModel(cfg *config.Config, themes *theme.Controller, wait *waitlist.Service, log *logger.Logger) Model {
	if log == nil {
		log = logger.Nop()
	}

	sink := &stateSink{states: make(map[string]engine.PanelState)}
	eng := engine.New(sink, log)
	metrics := &viewMetrics{cfg: cfg}

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		cfg:      cfg,
		themes:   themes,
		modals:   modal.NewController([]string{dialogWaitlist, dialogConfirm}, log),
		wait:     wait,
		seq:      sequence.NewSequencer(eng, metrics, cfg.Animation.SequenceOptions(), log),
		eng:      eng,
		metrics:  metrics,
		log:      log.WithComponent("tui"),
		states:   sink,
		tops:     make(map[string]float64),
		debounce: cfg.Animation.ResizeDebounce(),
		email:    email,
		spin:     sp,
	}
}

// Init implements tea.Model. Layout is built on the first WindowSizeMsg.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// rebuildSequence rebuilds every schedule from fresh measurements, disposing
// prior registrations first, and recomputes the scroll geometry.
func (m *Model) rebuildSequence() {
	ids := m.cfg.PanelIDs()
	scheds := m.seq.Rebuild(ids, trailingUnscheduled)

	margins := make(map[string]float64, len(scheds))
	for _, sched := range scheds {
		margins[sched.PanelID] = sched.Margin
	}

	viewport := float64(m.metrics.ViewportHeight())
	top := 0.0
	for _, id := range ids {
		m.tops[id] = top
		top += viewport + margins[id]
	}

	// Scrolling stops once the last panel fills the viewport.
	m.maxScroll = top - viewport
	if m.maxScroll < 0 {
		m.maxScroll = 0
	}

	if m.scroll > m.maxScroll {
		m.scroll = m.maxScroll
	}
	m.eng.SetScroll(m.scroll)
}

// setScroll clamps and applies a new scroll position.
func (m *Model) setScroll(pos float64) {
	if pos < 0 {
		pos = 0
	}
	if pos > m.maxScroll {
		pos = m.maxScroll
	}
	m.scroll = pos
	m.eng.SetScroll(pos)
}

// currentPanelIndex returns the panel the viewport currently rests on.
func (m *Model) currentPanelIndex() int {
	current := 0
	for i, id := range m.cfg.PanelIDs() {
		if m.tops[id] <= m.scroll {
			current = i
		}
	}
	return current
}

// ScrollPercent returns how far through the document the viewport is.
func (m *Model) ScrollPercent() float64 {
	if m.maxScroll <= 0 {
		return 1
	}
	return m.scroll / m.maxScroll
}
