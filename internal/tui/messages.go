package tui

// resizeSettledMsg fires after the resize debounce window elapses. Gen guards
// against stale ticks: only the message matching the latest resize rebuilds
// the schedules.
type resizeSettledMsg struct {
	Gen int
}

// confirmOpenMsg opens the confirmation modal after the visual-transition
// delay that follows a successful signup.
type confirmOpenMsg struct{}

// deliveryDoneMsg reports that the fire-and-forget delivery attempt finished.
// It carries no error: failures are logged inside the waitlist service and
// never reach UI state.
type deliveryDoneMsg struct{}
