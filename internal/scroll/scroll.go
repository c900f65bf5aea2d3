// Package scroll computes scroll targets that bring a panel into view
// below the toolbar overlay, and the delayed snap corrections applied
// after an animated scroll has settled.
package scroll

import "time"

// Layout constants, in rows.
const (
	// ToolbarMargin is added below the toolbar when computing the
	// effective top offset.
	ToolbarMargin = 12
	// FitSlack is the extra room required for a panel to count as
	// fitting inside the viewport.
	FitSlack = 16
	// TopAlignGap sits between the toolbar offset and a top-aligned
	// panel.
	TopAlignGap = 8
	// TopGuard is the minimum visible gap below the toolbar tolerated
	// at revalidation time.
	TopGuard = 6
	// BottomGuard is the minimum gap above the viewport bottom
	// tolerated at revalidation time.
	BottomGuard = 8
)

// SettleDelay is how long after starting the animated scroll the
// revalidation runs. There is no completion signal for the animation,
// so this is a typical settle time, not a measurement.
const SettleDelay = 450 * time.Millisecond

// Geometry is the ephemeral measurement set for one scroll decision.
// It is recomputed for every phase; nothing here is persisted.
type Geometry struct {
	Offset         int // toolbar height plus ToolbarMargin; 0+margin when no toolbar
	ScrollY        int // current vertical scroll position of the document
	ViewportHeight int
	PanelTop       int // panel top relative to the viewport top
	PanelHeight    int
}

// AbsoluteTop is the panel's top in document coordinates.
func (g Geometry) AbsoluteTop() int { return g.ScrollY + g.PanelTop }

// PanelBottom is the panel's bottom relative to the viewport top.
func (g Geometry) PanelBottom() int { return g.PanelTop + g.PanelHeight }

// Fits reports whether the panel fits in the viewport below the
// toolbar with slack to spare.
func (g Geometry) Fits() bool {
	return g.PanelHeight+g.Offset+FitSlack <= g.ViewportHeight
}

// Target returns the scroll position the animated scroll should reach.
// A fitting panel is centered in the viewport; an oversized one is
// aligned just below the toolbar. Never negative.
func Target(g Geometry) int {
	var t int
	if g.Fits() {
		t = g.AbsoluteTop() - (g.ViewportHeight-g.PanelHeight)/2
	} else {
		t = g.AbsoluteTop() - (g.Offset + TopAlignGap)
	}
	if t < 0 {
		t = 0
	}
	return t
}

// Revalidation carries the inputs captured when the animated scroll was
// started. Fits is deliberately not re-read at correction time so the
// correction decision is deterministic with respect to schedule time.
type Revalidation struct {
	PanelID string
	Fits    bool
	Force   bool
}

// Correction returns the immediate scroll delta to apply after the
// settle delay, reading the fresh geometry g. The top rule wins: a
// panel hidden under the toolbar is pulled back down. Otherwise a panel
// overflowing the bottom is pulled up, but only when it fit at schedule
// time or the adjustment was forced. ok is false when no correction is
// needed.
func Correction(g Geometry, r Revalidation) (delta int, ok bool) {
	if g.PanelTop < g.Offset+TopGuard {
		return g.PanelTop - (g.Offset + TopGuard), true
	}
	if over := g.PanelBottom() - (g.ViewportHeight - BottomGuard); over > 0 && (r.Fits || r.Force) {
		return over, true
	}
	return 0, false
}

// Viewport is the surface the coordinator scrolls. The document view
// implements it; tests supply fakes.
type Viewport interface {
	// Geometry measures the panel with the given id. ok is false when
	// the panel is not part of the document.
	Geometry(id string) (g Geometry, ok bool)
	// SmoothScrollTo starts an animated scroll toward target. It must
	// not block; completion is never signalled.
	SmoothScrollTo(target int)
	// ScrollBy applies an immediate, non-animated scroll.
	ScrollBy(delta int)
}

// Coordinator issues the two-phase scroll: animate toward the target,
// then snap-correct once the animation is assumed settled. It owns no
// timing; ScrollToPanel returns the Revalidation token and the caller
// schedules Revalidate after SettleDelay (a Bubble Tea tick in the app,
// a direct call in tests).
type Coordinator struct {
	vp Viewport
}

// NewCoordinator returns a coordinator over vp.
func NewCoordinator(vp Viewport) *Coordinator {
	return &Coordinator{vp: vp}
}

// ScrollToPanel starts the animated scroll for id. Returns nil when the
// panel cannot be measured.
func (c *Coordinator) ScrollToPanel(id string, force bool) *Revalidation {
	g, ok := c.vp.Geometry(id)
	if !ok {
		return nil
	}
	c.vp.SmoothScrollTo(Target(g))
	return &Revalidation{PanelID: id, Fits: g.Fits(), Force: force}
}

// Revalidate re-reads live geometry and applies the snap correction if
// one is due. Intervening user scrolls or reflows are reflected in the
// fresh measurement; this is a best-effort correction, not a
// transaction.
func (c *Coordinator) Revalidate(r Revalidation) {
	g, ok := c.vp.Geometry(r.PanelID)
	if !ok {
		return
	}
	if delta, due := Correction(g, r); due {
		c.vp.ScrollBy(delta)
	}
}
