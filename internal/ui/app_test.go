package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"termcv/internal/config"
	"termcv/internal/panel"
	"termcv/internal/scroll"
)

func newTestApp(t *testing.T, fragment string) (*appModelAdapter, *config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	a := NewAppModel(Options{
		CVSource:  "unused.json",
		ConfigDir: dir,
		Config:    cfg,
		Fragment:  fragment,
	})
	adapter := &appModelAdapter{AppModel: a}
	adapter.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return adapter, cfg, dir
}

func maximizedIDs(reg *panel.Registry) []string {
	var out []string
	for _, id := range reg.IDs() {
		if s, _ := reg.State(id); s.Maximized {
			out = append(out, id)
		}
	}
	return out
}

func TestApp_DefaultFragmentFocusesHome(t *testing.T) {
	a, cfg, _ := newTestApp(t, "")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	got := maximizedIDs(a.Registry)
	if len(got) != 1 || got[0] != HomePanelID {
		t.Errorf("maximized = %v, want [%s]", got, HomePanelID)
	}
	if cfg.LastPanel != HomePanelID {
		t.Errorf("fragment = %q, want %q", cfg.LastPanel, HomePanelID)
	}
}

func TestApp_DeepLinkFocusesFragment(t *testing.T) {
	a, cfg, _ := newTestApp(t, "education")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	got := maximizedIDs(a.Registry)
	if len(got) != 1 || got[0] != "education" {
		t.Errorf("maximized = %v, want [education]", got)
	}
	if cfg.LastPanel != "education" {
		t.Errorf("fragment = %q, want unchanged %q", cfg.LastPanel, "education")
	}
	if a.Toolbar.Fragment != "education" {
		t.Errorf("toolbar fragment = %q, want education", a.Toolbar.Fragment)
	}
}

func TestApp_UnknownFragmentIsTolerated(t *testing.T) {
	a, cfg, _ := newTestApp(t, "does-not-exist")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	if got := maximizedIDs(a.Registry); len(got) != 0 {
		t.Errorf("maximized = %v, want none for unknown fragment", got)
	}
	if cfg.LastPanel != "" {
		t.Errorf("fragment = %q, want empty", cfg.LastPanel)
	}
}

func TestApp_LoadErrorRendersFallback(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	a.Update(cvLoadedMsg{err: errFake{}})

	view := a.View()
	if !strings.Contains(view, "could not load cv") {
		t.Error("expected fallback message in view")
	}
	// Focusing still works against empty panels.
	if got := maximizedIDs(a.Registry); len(got) != 1 || got[0] != HomePanelID {
		t.Errorf("maximized = %v, want [home]", got)
	}
}

type errFake struct{}

func (errFake) Error() string { return "boom" }

func TestApp_NumberKeyFocusesSection(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	_, cmd := a.Update(keyMsg("2"))
	if cmd == nil {
		t.Fatal("expected command from number key")
	}
	a.Update(cmd())

	got := maximizedIDs(a.Registry)
	if len(got) != 1 || got[0] != "education" {
		t.Errorf("maximized = %v, want [education]", got)
	}
}

func TestApp_ChromeKeysOperateOnCurrentPanel(t *testing.T) {
	a, _, _ := newTestApp(t, "about")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	_, cmd := a.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("expected command from x")
	}
	a.Update(cmd())

	s, _ := a.Registry.State("about")
	if !s.Closed {
		t.Error("expected about to be closed")
	}
	if s.Maximized {
		t.Error("closing must clear maximized")
	}
}

func TestApp_ThemeCyclePersists(t *testing.T) {
	a, cfg, dir := newTestApp(t, "")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	before := a.palette.Name
	_, cmd := a.Update(keyMsg("t"))
	if cmd == nil {
		t.Fatal("expected command from t")
	}
	a.Update(cmd())

	if a.palette.Name == before {
		t.Error("palette did not change")
	}
	if cfg.Theme != a.palette.Name {
		t.Errorf("config theme = %q, want %q", cfg.Theme, a.palette.Name)
	}
	reloaded, err := config.Load(dir)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if reloaded.Theme != a.palette.Name {
		t.Errorf("persisted theme = %q, want %q", reloaded.Theme, a.palette.Name)
	}
}

func TestApp_TabStepsFocus(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	_, cmd := a.Update(keyMsg("tab"))
	if cmd == nil {
		t.Fatal("expected command from tab")
	}
	a.Update(cmd())

	got := maximizedIDs(a.Registry)
	if len(got) != 1 || got[0] != "about" {
		t.Errorf("maximized = %v, want [about] after tab from home", got)
	}
}

func TestApp_RevalidateMsgAppliesCorrection(t *testing.T) {
	a, _, _ := newTestApp(t, "about")
	a.Update(cvLoadedMsg{doc: sampleDoc()})

	// Drag the document down so the panel hides under the toolbar and
	// the revalidation's top rule fires.
	a.Document.ScrollManually(10000)
	g, ok := a.Document.Geometry("about")
	if !ok {
		t.Fatal("no geometry for about")
	}
	if g.PanelTop >= g.Offset+6 {
		t.Skip("layout too short to exercise the top rule")
	}
	before := a.Document.YOffset()
	a.Update(revalidateMsg{R: scroll.Revalidation{PanelID: "about", Fits: true}})
	if a.Document.YOffset() >= before {
		t.Errorf("offset = %d, want below %d after correction", a.Document.YOffset(), before)
	}
}
