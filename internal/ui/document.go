package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"termcv/internal/cv"
	"termcv/internal/panel"
	"termcv/internal/scroll"
	"termcv/internal/theme"
)

// DocumentView renders the CV panels as one vertical document inside a
// scrolling viewport and serves panel geometry to the scroll
// coordinator. The toolbar overlays the top of the viewport, which is
// why its height participates in the scroll offset.
type DocumentView struct {
	Registry *panel.Registry
	Sections []Section

	doc      *cv.Document
	fallback string // visible message when the CV failed to load

	styles        theme.Styles
	width         int
	height        int
	toolbarHeight int

	vp      viewport.Model
	dirty   bool
	tops    map[string]int
	heights map[string]int

	// Smooth scroll animation state. The animation is fire-and-forget:
	// nothing waits on it and a snap correction may land later.
	animating  bool
	animTarget int
}

// NewDocumentView creates the document over the given registry and
// section list.
func NewDocumentView(reg *panel.Registry, sections []Section, st theme.Styles) *DocumentView {
	return &DocumentView{
		Registry: reg,
		Sections: sections,
		styles:   st,
		vp:       viewport.New(0, 0),
		dirty:    true,
		tops:     map[string]int{},
		heights:  map[string]int{},
	}
}

// SetDocument installs the loaded CV content.
func (d *DocumentView) SetDocument(doc *cv.Document) {
	d.doc = doc
	d.fallback = ""
	d.dirty = true
}

// SetFallback installs the visible failure message shown when the CV
// could not be fetched or parsed. Panels render empty.
func (d *DocumentView) SetFallback(msg string) {
	d.fallback = msg
	d.dirty = true
}

// SetStyles switches the palette-derived styles.
func (d *DocumentView) SetStyles(st theme.Styles) {
	d.styles = st
	d.dirty = true
}

// SetSize updates terminal dimensions and the toolbar overlay height.
func (d *DocumentView) SetSize(width, height, toolbarHeight int) {
	d.width = width
	d.height = height
	d.toolbarHeight = toolbarHeight
	d.vp.Width = width
	d.vp.Height = height
	d.dirty = true
}

// MarkDirty forces a layout rebuild on the next render. The app's
// registry listener calls this: closing or minimizing a panel changes
// every panel's position.
func (d *DocumentView) MarkDirty() { d.dirty = true }

// Geometry implements scroll.Viewport.
func (d *DocumentView) Geometry(id string) (scroll.Geometry, bool) {
	d.rebuild()
	top, ok := d.tops[id]
	if !ok {
		return scroll.Geometry{}, false
	}
	return scroll.Geometry{
		Offset:         d.toolbarHeight + scroll.ToolbarMargin,
		ScrollY:        d.vp.YOffset,
		ViewportHeight: d.vp.Height,
		PanelTop:       top - d.vp.YOffset,
		PanelHeight:    d.heights[id],
	}, true
}

// SmoothScrollTo implements scroll.Viewport: it starts the animated
// scroll and returns immediately. Advance drives it frame by frame.
func (d *DocumentView) SmoothScrollTo(target int) {
	d.animTarget = d.clampOffset(target)
	d.animating = d.animTarget != d.vp.YOffset
}

// ScrollBy implements scroll.Viewport: an immediate snap scroll. It
// also cancels any running animation so the correction is not undone.
func (d *DocumentView) ScrollBy(delta int) {
	d.animating = false
	d.vp.SetYOffset(d.clampOffset(d.vp.YOffset + delta))
}

// Animating reports whether the smooth scroll still has frames to run.
func (d *DocumentView) Animating() bool { return d.animating }

// Advance moves one animation frame toward the target with ease-out
// steps. Returns false when the animation is done.
func (d *DocumentView) Advance() bool {
	if !d.animating {
		return false
	}
	remaining := d.animTarget - d.vp.YOffset
	if remaining == 0 {
		d.animating = false
		return false
	}
	step := remaining / 4
	if step == 0 {
		if remaining > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	d.vp.SetYOffset(d.vp.YOffset + step)
	if d.vp.YOffset == d.animTarget {
		d.animating = false
	}
	return d.animating
}

// ScrollManually applies a user-driven scroll, cancelling the
// animation (the later snap correction still reads the live position).
func (d *DocumentView) ScrollManually(delta int) {
	d.animating = false
	d.vp.SetYOffset(d.clampOffset(d.vp.YOffset + delta))
}

// YOffset exposes the current scroll position.
func (d *DocumentView) YOffset() int { return d.vp.YOffset }

// View renders the visible slice of the document.
func (d *DocumentView) View() string {
	d.rebuild()
	return d.vp.View()
}

func (d *DocumentView) clampOffset(off int) int {
	if off < 0 {
		return 0
	}
	if max := d.vp.TotalLineCount() - d.vp.Height; off > max && max >= 0 {
		return max
	}
	return off
}

// rebuild lays out every panel, recording each panel's absolute top
// line and height for geometry queries.
func (d *DocumentView) rebuild() {
	if !d.dirty {
		return
	}
	d.dirty = false

	var b strings.Builder
	line := 0
	d.tops = map[string]int{}
	d.heights = map[string]int{}

	// The toolbar overlays the viewport top, so the document carries
	// leading padding to keep the first panel visible at scroll 0.
	for i := 0; i < d.toolbarHeight; i++ {
		b.WriteString("\n")
		line++
	}

	if d.fallback != "" {
		msg := d.styles.Danger.Render(d.fallback)
		b.WriteString(msg + "\n")
		line += lipgloss.Height(msg)
	}

	for i, s := range d.Sections {
		block := d.renderPanel(s)
		h := lipgloss.Height(block)
		d.tops[s.ID] = line
		d.heights[s.ID] = h
		b.WriteString(block)
		line += h
		if i < len(d.Sections)-1 {
			b.WriteString("\n")
			line++
		}
	}
	d.vp.SetContent(b.String())
}

// renderPanel draws one panel with terminal window chrome. The title
// bar carries the chrome controls and the state label set; the body is
// hidden for closed panels and collapsed for minimized ones.
func (d *DocumentView) renderPanel(s Section) string {
	st := d.styles
	state, _ := d.Registry.State(s.ID)

	border := st.BorderDim
	title := st.Muted
	if state.Maximized {
		border = st.Border
		title = st.Title
	}

	header := title.Render(s.Title) + "  " + st.Muted.Render("[x][-][□]")
	if label := state.Label(); label != "" {
		header += "  " + st.Label.Render(label)
	}

	inner := d.width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}

	var body []string
	switch {
	case state.Closed:
		// Title bar only.
	case state.Minimized:
		body = []string{st.Muted.Render("…")}
	default:
		if d.doc != nil {
			body = s.Render(d.doc, st, inner)
		}
		if len(body) == 0 {
			body = []string{st.Muted.Render("(empty)")}
		}
	}

	content := header
	if len(body) > 0 {
		content += "\n\n" + strings.Join(body, "\n")
	}
	return border.Width(d.width - 2).Render(content)
}
