package config

import (
	"time"

	"github.com/Boskolife/pincoin/internal/sequence"
)

// Config is the landing content configuration: the panels in document order
// plus waitlist and animation tunables.
type Config struct {
	Version   string         `yaml:"version" validate:"required"`
	Theme     string         `yaml:"theme,omitempty" validate:"omitempty,oneof=dark light"`
	Waitlist  Waitlist       `yaml:"waitlist,omitempty"`
	Animation Animation      `yaml:"animation,omitempty"`
	Panels    []PanelSection `yaml:"panels" validate:"required,min=2,dive"`
}

// PanelSection is one full-viewport section of the landing page. Body lines
// render inside the panel frame; Content lines are the inner scrollable
// content the sequencer measures. A panel without content is skipped by the
// scroll sequence but still rendered statically.
type PanelSection struct {
	ID      string   `yaml:"id" validate:"required,panel_id"`
	Title   string   `yaml:"title" validate:"required"`
	Body    []string `yaml:"body,omitempty"`
	Content []string `yaml:"content,omitempty"`
}

// HasContent reports whether the panel has a measurable inner content
// element.
func (p PanelSection) HasContent() bool {
	return len(p.Content) > 0
}

// Waitlist configures the signup capture. An empty endpoint disables
// delivery; captured emails are then discarded after validation.
type Waitlist struct {
	Endpoint string `yaml:"endpoint,omitempty" validate:"omitempty,url"`
}

// Animation carries the scroll sequencer tunables. Zero values fall back to
// the canonical defaults.
type Animation struct {
	HeightOffset     int     `yaml:"height_offset,omitempty" validate:"gte=0"`
	ScaleTarget      float64 `yaml:"scale_target,omitempty" validate:"gte=0,lte=1"`
	FadeMidOpacity   float64 `yaml:"fade_mid_opacity,omitempty" validate:"gte=0,lte=1"`
	ResizeDebounceMS int     `yaml:"resize_debounce_ms,omitempty" validate:"gte=0"`
}

const defaultResizeDebounce = 250 * time.Millisecond

// SequenceOptions converts the animation tunables into sequencer options,
// substituting canonical defaults for unset values.
func (a Animation) SequenceOptions() sequence.Options {
	opts := sequence.DefaultOptions()
	opts.HeightOffset = a.HeightOffset
	if a.ScaleTarget > 0 {
		opts.ScaleTarget = a.ScaleTarget
	}
	if a.FadeMidOpacity > 0 {
		opts.FadeMidOpacity = a.FadeMidOpacity
	}
	return opts
}

// ResizeDebounce returns the debounce delay applied before schedules are
// rebuilt on resize.
func (a Animation) ResizeDebounce() time.Duration {
	if a.ResizeDebounceMS > 0 {
		return time.Duration(a.ResizeDebounceMS) * time.Millisecond
	}
	return defaultResizeDebounce
}

// PanelIDs returns the panel identifiers in document order.
func (c *Config) PanelIDs() []string {
	ids := make([]string, 0, len(c.Panels))
	for _, p := range c.Panels {
		ids = append(ids, p.ID)
	}
	return ids
}

// Panel returns the section with the given ID.
func (c *Config) Panel(id string) (PanelSection, bool) {
	for _, p := range c.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return PanelSection{}, false
}
