package sequence

import (
	streamerrors "github.com/Boskolife/pincoin/pkg/errors"
)

// Property identifies a visual value a tween interpolates.
type Property int

const (
	PropTranslateY Property = iota
	PropScale
	PropOpacity
)

// Easing selects the interpolation curve for a tween.
type Easing int

const (
	EaseLinear Easing = iota
)

// Tween describes one property transition inside a schedule. At and Duration
// are fractions of the schedule's scroll range, so a schedule is independent
// of the absolute scroll positions it ends up mapped to.
type Tween struct {
	Property Property
	From     float64
	To       float64
	At       float64
	Duration float64
	Easing   Easing
}

// Schedule is the scroll-range mapping and transition plan for one panel.
// It is rebuilt from scratch whenever layout changes; nothing in it is
// persisted.
type Schedule struct {
	PanelID string

	// Start and End are absolute scroll offsets delimiting the range the
	// animation engine maps progress 0..1 onto.
	Start float64
	End   float64

	// Pin holds the panel fixed in the viewport for the whole range. Pinning
	// reserves no layout space; Margin already accounts for it.
	Pin bool

	// Margin is the trailing space injected after the panel so the next
	// panel's trigger point stays correct despite the synthetic scroll this
	// panel's animation consumes.
	Margin float64

	// FakeScrollRatio is the fraction of the range devoted to synthetic
	// scrolling of oversized content. Always in [0, 1).
	FakeScrollRatio float64

	Tweens []Tween
}

// Length returns the scroll distance the schedule spans.
func (s Schedule) Length() float64 {
	return s.End - s.Start
}

// Panel is one full-viewport section participating in the scroll sequence.
// Top is its document offset at schedule-build time; ContentHeight is the
// measured height of its inner content.
type Panel struct {
	ID            string
	Top           float64
	ContentHeight int
}

// Options tunes schedule construction. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// HeightOffset is subtracted from the content/viewport difference before
	// the fake-scroll ratio is derived. The source material disagreed with
	// itself here, so it is a plain tunable with a zero default.
	HeightOffset int

	// ScaleTarget is the final scale of the exit transition.
	ScaleTarget float64

	// FadeMidOpacity is the opacity reached over the first 90% of the exit
	// transition, before the final fade to zero.
	FadeMidOpacity float64
}

// DefaultOptions returns the canonical tuning: no height offset, scale to
// 0.7, fade through 0.9.
func DefaultOptions() Options {
	return Options{
		HeightOffset:   0,
		ScaleTarget:    0.7,
		FadeMidOpacity: 0.9,
	}
}

// exit transition split: scale/partial-fade over the first 90% of the
// remaining range, final fade over the last 10%.
const exitFadeSplit = 0.9

// FakeScrollRatio derives the fraction of a panel's animation devoted to
// synthetic scrolling. Zero when the content fits the viewport; otherwise
// difference/(difference+viewportHeight), which is always below 1.
func FakeScrollRatio(contentHeight, viewportHeight, heightOffset int) float64 {
	difference := contentHeight - viewportHeight - heightOffset
	if difference <= 0 || viewportHeight <= 0 {
		return 0
	}
	return float64(difference) / float64(difference+viewportHeight)
}

// BuildSchedule computes the scroll-range mapping and tween plan for one
// panel. Panels with no measurable inner content cannot be scheduled and
// yield a ScheduleError; callers skip them without failing the sequence.
//
// The range starts when the panel's bottom edge meets the viewport's bottom
// edge. With a fake-scroll phase the range spans the inner content's height;
// without one it ends when the panel's bottom edge exits the viewport's top.
func BuildSchedule(panel Panel, viewportHeight int, opts Options) (Schedule, error) {
	if panel.ContentHeight <= 0 {
		return Schedule{}, streamerrors.NewScheduleError(panel.ID, "panel has no measurable inner content")
	}

	ratio := FakeScrollRatio(panel.ContentHeight, viewportHeight, opts.HeightOffset)

	sched := Schedule{
		PanelID:         panel.ID,
		Start:           panel.Top,
		Pin:             true,
		FakeScrollRatio: ratio,
	}

	if ratio > 0 {
		sched.Margin = float64(panel.ContentHeight) * ratio
		sched.End = sched.Start + float64(panel.ContentHeight)
	} else {
		sched.End = sched.Start + float64(viewportHeight)
	}

	// The fake-scroll phase has relative duration r/(1-r) against the exit
	// transition's 1, which normalizes to fractions r and 1-r of the range.
	if ratio > 0 {
		sched.Tweens = append(sched.Tweens, Tween{
			Property: PropTranslateY,
			From:     0,
			To:       -float64(viewportHeight),
			At:       0,
			Duration: ratio,
			Easing:   EaseLinear,
		})
	}

	exit := 1 - ratio
	sched.Tweens = append(sched.Tweens,
		Tween{
			Property: PropScale,
			From:     1,
			To:       opts.ScaleTarget,
			At:       ratio,
			Duration: exitFadeSplit * exit,
			Easing:   EaseLinear,
		},
		Tween{
			Property: PropOpacity,
			From:     1,
			To:       opts.FadeMidOpacity,
			At:       ratio,
			Duration: exitFadeSplit * exit,
			Easing:   EaseLinear,
		},
		Tween{
			Property: PropOpacity,
			From:     opts.FadeMidOpacity,
			To:       0,
			At:       ratio + exitFadeSplit*exit,
			Duration: (1 - exitFadeSplit) * exit,
			Easing:   EaseLinear,
		},
	)

	return sched, nil
}
