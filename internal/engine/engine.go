// Package engine evaluates registered scroll schedules against the current
// scroll position and pushes the interpolated visual state to an applier.
// It is the animation side of the sequence package: the sequencer decides
// what should happen over which scroll range, the engine makes it happen.
package engine

import (
	"sync"

	"github.com/Boskolife/pincoin/internal/logger"
	"github.com/Boskolife/pincoin/internal/sequence"
)

// PanelState is the interpolated visual state of one panel at the current
// scroll position.
type PanelState struct {
	// TranslateY shifts the panel's inner content vertically, in cells.
	// Negative values scroll the content upward (the fake-scroll phase).
	TranslateY float64

	// Scale is the panel's render scale, 1 = full size.
	Scale float64

	// Opacity is the panel's visibility, 1 = opaque, 0 = gone.
	Opacity float64

	// Pinned reports whether the panel is currently held fixed in the
	// viewport while its timeline plays.
	Pinned bool

	// Progress is the clamped position inside the schedule's range.
	Progress float64
}

// initialState is the resting state before a timeline begins.
func initialState() PanelState {
	return PanelState{Scale: 1, Opacity: 1}
}

// Applier receives evaluated panel states. The TUI view implements it.
type Applier interface {
	Apply(panelID string, state PanelState)
}

// Engine drives registered timelines from the scroll position. All methods
// are called from the UI loop; the mutex only guards against a disposal
// racing a concurrent evaluation from a background command.
type Engine struct {
	mu        sync.Mutex
	applier   Applier
	log       *logger.Logger
	timelines []*timeline
}

type timeline struct {
	sched    sequence.Schedule
	disposed bool
}

// Dispose detaches the timeline. Safe to call more than once; a disposed
// timeline is never evaluated again.
func (t *timeline) Dispose() {
	t.disposed = true
}

// New creates an Engine that pushes evaluated states to the given applier.
func New(applier Applier, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		applier: applier,
		log:     log.WithComponent("engine"),
	}
}

// Register attaches a schedule as a live timeline and returns its disposal
// handle. Implements sequence.Engine.
func (e *Engine) Register(sched sequence.Schedule) (sequence.Registration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := &timeline{sched: sched}
	e.timelines = append(e.timelines, t)

	e.log.WithFields(map[string]any{
		"panel": sched.PanelID,
		"start": sched.Start,
		"end":   sched.End,
	}).Debug("timeline registered")

	return t, nil
}

// SetScroll evaluates every live timeline at the given scroll position and
// applies the results. Disposed timelines are pruned as a side effect.
func (e *Engine) SetScroll(pos float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	live := e.timelines[:0]
	for _, t := range e.timelines {
		if t.disposed {
			continue
		}
		live = append(live, t)
		e.applier.Apply(t.sched.PanelID, Evaluate(t.sched, pos))
	}
	e.timelines = live
}

// ActiveCount returns the number of live timelines.
func (e *Engine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, t := range e.timelines {
		if !t.disposed {
			n++
		}
	}
	return n
}

// Evaluate computes the panel state a schedule produces at an absolute scroll
// position. Before the range the panel rests untouched; past the range the
// final tween values hold.
func Evaluate(sched sequence.Schedule, pos float64) PanelState {
	state := initialState()

	length := sched.Length()
	if length <= 0 {
		return state
	}

	progress := (pos - sched.Start) / length
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	state.Progress = progress
	state.Pinned = sched.Pin && pos >= sched.Start && pos < sched.End

	for _, tw := range sched.Tweens {
		value, active := evalTween(tw, progress)
		if !active {
			continue
		}
		switch tw.Property {
		case sequence.PropTranslateY:
			state.TranslateY = value
		case sequence.PropScale:
			state.Scale = value
		case sequence.PropOpacity:
			state.Opacity = value
		}
	}

	return state
}

// evalTween returns the tween's value at the given progress. active is false
// before the tween's window opens; tweens that have finished hold their end
// value so later evaluation order matches timeline order.
func evalTween(tw sequence.Tween, progress float64) (value float64, active bool) {
	if progress < tw.At {
		return 0, false
	}
	if tw.Duration <= 0 || progress >= tw.At+tw.Duration {
		return tw.To, true
	}

	frac := (progress - tw.At) / tw.Duration
	return tw.From + (tw.To-tw.From)*ease(tw.Easing, frac), true
}

func ease(e sequence.Easing, frac float64) float64 {
	switch e {
	case sequence.EaseLinear:
		return frac
	default:
		return frac
	}
}
