// Package theme owns the dark/light appearance state: it reads the persisted
// preference, applies the matching style bundle, and flips both on toggle.
package theme

import (
	"github.com/Boskolife/pincoin/internal/logger"
	"github.com/Boskolife/pincoin/internal/prefs"
)

// PreferenceStore is the persistence surface the controller needs. Satisfied
// by *prefs.Store and by fakes in tests.
type PreferenceStore interface {
	Theme() prefs.Theme
	SetTheme(prefs.Theme) error
}

// Controller is the theme state machine. It has two states, dark and light,
// and lives for the session. Every transition writes the preference and swaps
// the active style bundle in one step.
type Controller struct {
	store   PreferenceStore
	current prefs.Theme
	styles  Styles
	log     *logger.Logger
}

// NewController creates a Controller initialized from the persisted
// preference, defaulting to dark when unset.
func NewController(store PreferenceStore, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}

	current := prefs.ThemeDark
	if store != nil {
		if stored := store.Theme(); stored.Valid() {
			current = stored
		}
	}

	return &Controller{
		store:   store,
		current: current,
		styles:  stylesFor(current),
		log:     log.WithComponent("theme"),
	}
}

// Current returns the active theme.
func (c *Controller) Current() prefs.Theme {
	return c.current
}

// Styles returns the style bundle for the active theme.
func (c *Controller) Styles() Styles {
	return c.styles
}

// Toggle flips between dark and light. A failed preference write is logged
// but does not block the visual change; the preference catches up on the
// next successful transition.
func (c *Controller) Toggle() {
	next := prefs.ThemeDark
	if c.current == prefs.ThemeDark {
		next = prefs.ThemeLight
	}
	c.Set(next)
}

// Set transitions to the given theme, persisting the preference and swapping
// the style bundle.
func (c *Controller) Set(t prefs.Theme) {
	if !t.Valid() {
		c.log.WithFields(map[string]any{"theme": string(t)}).Warn("ignoring unknown theme")
		return
	}

	c.current = t
	c.styles = stylesFor(t)

	if c.store != nil {
		if err := c.store.SetTheme(t); err != nil {
			c.log.Error(err, "failed to persist theme preference")
		}
	}

	c.log.WithFields(map[string]any{"theme": string(t)}).Debug("theme applied")
}

func stylesFor(t prefs.Theme) Styles {
	if t == prefs.ThemeLight {
		return LightStyles()
	}
	return DarkStyles()
}
