package models

// Navigation is the outcome of a row action: where to go and whether the
// destination opens in a separate browsing context.
type Navigation struct {
	URL string
	// NewContext is true when the current view must stay intact and the
	// destination opens elsewhere (a new tab, the clipboard in the TUI).
	NewContext bool
}
