package ui

import (
	"testing"

	"termcv/internal/cv"
	"termcv/internal/panel"
	"termcv/internal/scroll"
	"termcv/internal/theme"
)

func sampleDoc() *cv.Document {
	return &cv.Document{
		Person: map[string]interface{}{"name": "Ada Example", "title": "Engineer"},
		About:  []string{"Likes terminals."},
		Education: []cv.Education{
			{School: "State University", Degree: "BSc", Period: "2008-2012"},
		},
		Experience: []cv.Experience{
			{Company: "Acme", Role: "Engineer", Period: "2012-now", Notes: []string{"shipped"}},
		},
		Skills:   []cv.SkillGroup{{Name: "Languages", Items: []string{"Go"}}},
		Projects: []cv.Project{{Name: "termcv", Description: "this"}},
		Links:    []cv.Link{{Label: "github", URL: "https://github.com/ada"}},
	}
}

func newTestDocument() *DocumentView {
	sections := Sections()
	reg := panel.NewRegistry(Descriptors(sections))
	d := NewDocumentView(reg, sections, theme.NewStyles(theme.Palettes[0]))
	d.SetDocument(sampleDoc())
	d.SetSize(80, 40, 3)
	return d
}

func TestDocument_GeometryKnownPanel(t *testing.T) {
	d := newTestDocument()

	g, ok := d.Geometry("about")
	if !ok {
		t.Fatal("expected geometry for about")
	}
	if g.Offset != 3+scroll.ToolbarMargin {
		t.Errorf("offset = %d, want toolbar+margin = %d", g.Offset, 3+scroll.ToolbarMargin)
	}
	if g.ViewportHeight != 40 {
		t.Errorf("viewport height = %d, want 40", g.ViewportHeight)
	}
	if g.PanelHeight <= 0 {
		t.Errorf("panel height = %d, want > 0", g.PanelHeight)
	}
	if g.ScrollY != 0 {
		t.Errorf("scrollY = %d, want 0", g.ScrollY)
	}
}

func TestDocument_GeometryUnknownPanel(t *testing.T) {
	d := newTestDocument()
	if _, ok := d.Geometry("ghost"); ok {
		t.Error("expected no geometry for unknown id")
	}
}

func TestDocument_PanelsStackInOrder(t *testing.T) {
	d := newTestDocument()
	prev := -1
	for _, s := range d.Sections {
		g, ok := d.Geometry(s.ID)
		if !ok {
			t.Fatalf("no geometry for %s", s.ID)
		}
		top := g.AbsoluteTop()
		if top <= prev {
			t.Errorf("panel %s top %d not below previous top %d", s.ID, top, prev)
		}
		prev = top
	}
}

func TestDocument_ChromeChangesLayout(t *testing.T) {
	d := newTestDocument()
	before, _ := d.Geometry("links")

	// Closing an earlier panel moves later panels up once the layout
	// is rebuilt.
	d.Registry.ToggleClosed("experience")
	d.MarkDirty()
	after, _ := d.Geometry("links")
	if after.AbsoluteTop() >= before.AbsoluteTop() {
		t.Errorf("links top %d should move up from %d after closing experience",
			after.AbsoluteTop(), before.AbsoluteTop())
	}
}

func TestDocument_SmoothScrollAdvances(t *testing.T) {
	d := newTestDocument()
	d.SmoothScrollTo(20)
	if !d.Animating() {
		t.Fatal("expected animation to start")
	}
	for i := 0; i < 100 && d.Advance(); i++ {
	}
	if d.Animating() {
		t.Error("animation did not converge")
	}
	if d.YOffset() != 20 && d.YOffset() != d.clampOffset(20) {
		t.Errorf("offset = %d, want 20 (or clamp)", d.YOffset())
	}
}

func TestDocument_ScrollByCancelsAnimation(t *testing.T) {
	d := newTestDocument()
	d.SmoothScrollTo(30)
	d.ScrollBy(2)
	if d.Animating() {
		t.Error("snap scroll must cancel the animation")
	}
}

func TestDocument_ScrollClampsAtZero(t *testing.T) {
	d := newTestDocument()
	d.ScrollBy(-100)
	if d.YOffset() != 0 {
		t.Errorf("offset = %d, want 0", d.YOffset())
	}
}

func TestDocument_FallbackRendered(t *testing.T) {
	sections := Sections()
	reg := panel.NewRegistry(Descriptors(sections))
	d := NewDocumentView(reg, sections, theme.NewStyles(theme.Palettes[0]))
	d.SetSize(80, 40, 3)
	without, ok := d.Geometry(HomePanelID)
	if !ok {
		t.Fatal("expected geometry for home")
	}

	// Panels still exist with empty bodies; geometry shifts down by
	// the fallback line.
	d.SetFallback("could not load cv")
	with, _ := d.Geometry(HomePanelID)
	if with.AbsoluteTop() <= without.AbsoluteTop() {
		t.Error("fallback message should push the first panel down")
	}
}
