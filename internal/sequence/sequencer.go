package sequence

import (
	"github.com/Boskolife/pincoin/internal/logger"
)

// Metrics reports measured element dimensions on demand. The TUI implements
// it from its window size and rendered content; tests implement it with
// fixed numbers.
type Metrics interface {
	// ViewportHeight returns the current viewport height in cells.
	ViewportHeight() int

	// ContentHeight returns the rendered height of a panel's inner content.
	// ok is false when the panel has no inner content element.
	ContentHeight(panelID string) (height int, ok bool)
}

// Registration is a live timeline held by the animation engine. Disposing it
// detaches the timeline so a rebuild cannot leave duplicate registrations
// behind.
type Registration interface {
	Dispose()
}

// Engine accepts built schedules and thereafter owns advancing their values
// as the scroll position changes. The sequencer never drives per-frame
// updates itself.
type Engine interface {
	Register(sched Schedule) (Registration, error)
}

// Sequencer builds a scroll-driven transition schedule for each panel in
// document order and registers it with the engine. It keeps track of the
// registrations it created so a rebuild can dispose them first.
type Sequencer struct {
	engine  Engine
	metrics Metrics
	opts    Options
	log     *logger.Logger

	regs      []Registration
	schedules []Schedule
}

// NewSequencer creates a Sequencer with the given collaborators. A nil logger
// is replaced with a no-op one.
func NewSequencer(engine Engine, metrics Metrics, opts Options, log *logger.Logger) *Sequencer {
	if log == nil {
		log = logger.Nop()
	}
	return &Sequencer{
		engine:  engine,
		metrics: metrics,
		opts:    opts,
		log:     log.WithComponent("sequence"),
	}
}

// Build walks the panel IDs in document order, excluding the trailing
// skipTrailing panels (the last panel is the final resting state and gets no
// exit animation), and registers one timeline per schedulable panel.
//
// Panels are chained: the trailing margin injected for panel N shifts panel
// N+1's document offset, which keeps N+1's trigger point visually correct
// after N's synthetic scroll.
func (s *Sequencer) Build(panelIDs []string, skipTrailing int) []Schedule {
	viewport := s.metrics.ViewportHeight()

	limit := len(panelIDs) - skipTrailing
	if limit < 0 {
		limit = 0
	}

	s.schedules = s.schedules[:0]
	top := 0.0

	for i, id := range panelIDs {
		if i >= limit {
			break
		}

		contentHeight, ok := s.metrics.ContentHeight(id)
		if !ok {
			s.log.WithFields(map[string]any{"panel": id}).Warn("panel has no inner content, skipping")
			top += float64(viewport)
			continue
		}

		sched, err := BuildSchedule(Panel{ID: id, Top: top, ContentHeight: contentHeight}, viewport, s.opts)
		if err != nil {
			s.log.WithFields(map[string]any{"panel": id}).Error(err, "failed to build schedule")
			top += float64(viewport)
			continue
		}

		reg, err := s.engine.Register(sched)
		if err != nil {
			s.log.WithFields(map[string]any{"panel": id}).Error(err, "failed to register timeline")
			top += float64(viewport)
			continue
		}

		s.regs = append(s.regs, reg)
		s.schedules = append(s.schedules, sched)

		top += float64(viewport) + sched.Margin
	}

	s.log.WithFields(map[string]any{
		"panels":    len(panelIDs),
		"scheduled": len(s.schedules),
		"viewport":  viewport,
	}).Debug("scroll sequence built")

	return s.schedules
}

// Rebuild disposes every previously registered timeline and builds the
// sequence again from fresh measurements. Required after a viewport resize;
// stale registrations would otherwise keep their own listeners alive.
func (s *Sequencer) Rebuild(panelIDs []string, skipTrailing int) []Schedule {
	s.Dispose()
	return s.Build(panelIDs, skipTrailing)
}

// Dispose detaches every registration created by the last Build.
func (s *Sequencer) Dispose() {
	for _, reg := range s.regs {
		reg.Dispose()
	}
	s.regs = s.regs[:0]
}

// Schedules returns the schedules produced by the last Build.
func (s *Sequencer) Schedules() []Schedule {
	return s.schedules
}

// TotalHeight returns the scrollable document height implied by the last
// Build: one viewport per panel plus every injected margin.
func (s *Sequencer) TotalHeight(panelCount int) float64 {
	total := float64(panelCount * s.metrics.ViewportHeight())
	for _, sched := range s.schedules {
		total += sched.Margin
	}
	return total
}
