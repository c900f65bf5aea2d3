// Package panel holds the window-chrome state for every CV panel and
// enforces the single-maximized invariant across them.
package panel

import "strings"

// State is the chrome flag set of one panel. At most one flag is true.
type State struct {
	Closed    bool
	Minimized bool
	Maximized bool
}

// Label returns the title-bar label set: the active flags in the fixed
// order closed, minimized, max, space-joined. Empty when all are false.
func (s State) Label() string {
	var parts []string
	if s.Closed {
		parts = append(parts, "closed")
	}
	if s.Minimized {
		parts = append(parts, "minimized")
	}
	if s.Maximized {
		parts = append(parts, "max")
	}
	return strings.Join(parts, " ")
}

// Descriptor declares a panel at registry construction time.
// AdjustScroll marks panels that should be scrolled into view on focus;
// it never changes afterwards.
type Descriptor struct {
	ID           string
	AdjustScroll bool
}

// Panel is one terminal-styled content window.
type Panel struct {
	id           string
	adjustScroll bool
	state        State
}

// ID returns the panel's stable identifier.
func (p *Panel) ID() string { return p.id }

// AdjustScroll reports whether focusing this panel triggers scrolling.
func (p *Panel) AdjustScroll() bool { return p.adjustScroll }

// State returns the current chrome flags.
func (p *Panel) State() State { return p.state }
