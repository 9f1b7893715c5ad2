// Package modal manages overlay dialog state: which dialog is open, whether
// the shared overlay is active, and whether page scrolling is locked.
package modal

import (
	"github.com/Boskolife/pincoin/internal/logger"
)

// Controller tracks dialog visibility. At most one dialog is open at a time:
// opening a dialog force-closes any other, so the single-blocking-dialog
// convention is an enforced invariant rather than a hope.
type Controller struct {
	known  map[string]struct{}
	active string
	log    *logger.Logger
}

// NewController creates a Controller for the given dialog identifiers.
func NewController(dialogIDs []string, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}

	known := make(map[string]struct{}, len(dialogIDs))
	for _, id := range dialogIDs {
		known[id] = struct{}{}
	}

	return &Controller{
		known: known,
		log:   log.WithComponent("modal"),
	}
}

// Open opens the named dialog, closing any other open dialog first. Unknown
// dialog IDs are logged and ignored; a missing dialog degrades silently.
func (c *Controller) Open(id string) {
	if _, ok := c.known[id]; !ok {
		c.log.WithFields(map[string]any{"dialog": id}).Warn("unknown dialog, ignoring open")
		return
	}

	if c.active != "" && c.active != id {
		c.log.WithFields(map[string]any{"closed": c.active, "opened": id}).Debug("force-closing prior dialog")
	}
	c.active = id
}

// Close closes the named dialog if it is the open one. Closing a dialog that
// is not open is a no-op.
func (c *Controller) Close(id string) {
	if c.active == id {
		c.active = ""
	}
}

// CloseAll closes every dialog and deactivates the overlay. This is the
// transition behind both the overlay click and the Escape key.
func (c *Controller) CloseAll() {
	c.active = ""
}

// IsOpen reports whether the named dialog is open.
func (c *Controller) IsOpen(id string) bool {
	return c.active == id
}

// ActiveDialog returns the open dialog's ID, if any.
func (c *Controller) ActiveDialog() (string, bool) {
	if c.active == "" {
		return "", false
	}
	return c.active, true
}

// OverlayActive reports whether the shared overlay should render. It is
// active exactly while a dialog is open.
func (c *Controller) OverlayActive() bool {
	return c.active != ""
}

// ScrollLocked reports whether page scrolling is disabled. Scrolling is
// locked exactly while a dialog is open.
func (c *Controller) ScrollLocked() bool {
	return c.active != ""
}
