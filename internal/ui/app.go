package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"termcv/internal/config"
	"termcv/internal/cv"
	"termcv/internal/focus"
	"termcv/internal/logger"
	"termcv/internal/panel"
	"termcv/internal/scroll"
	"termcv/internal/theme"
	"termcv/internal/trace"
)

// Animation cadences.
const (
	scrollFrameInterval = 30 * time.Millisecond
	glitchInterval      = 120 * time.Millisecond
)

// cvLoadedMsg delivers the startup fetch result.
type cvLoadedMsg struct {
	doc *cv.Document
	err error
}

// focusPanelMsg asks the app to open-and-focus a panel.
type focusPanelMsg struct {
	ID    string
	Force bool
}

// focusStepMsg moves focus to an adjacent panel in document order.
type focusStepMsg struct{ Delta int }

// chromeOp is a window-chrome toggle on the current panel.
type chromeOp int

const (
	opClose chromeOp = iota
	opMinimize
	opMaximize
)

type chromeMsg struct{ Op chromeOp }

// cycleThemeMsg switches to the next palette.
type cycleThemeMsg struct{}

// revalidateMsg fires after the scroll settle delay.
type revalidateMsg struct{ R scroll.Revalidation }

// scrollFrameMsg advances the smooth scroll animation.
type scrollFrameMsg struct{}

// glitchTickMsg advances the toolbar glitch animation.
type glitchTickMsg struct{}

// Options configures the application root.
type Options struct {
	CVSource  string
	ConfigDir string
	Config    *config.Config
	Fragment  string // initial deep-link target; empty means HomePanelID
	Tracer    *trace.Tracer
}

// AppModel is the application root: it owns the registry, the focus
// controller, the document, and the toolbar, and wires them together.
type AppModel struct {
	Sections   []Section
	Registry   *panel.Registry
	Controller *focus.Controller
	Document   *DocumentView
	Toolbar    *Toolbar
	KeyHandler *KeyHandler

	opts      Options
	palette   theme.Palette
	spinner   spinner.Model
	loading   bool
	lastFocus string
	target    string // initial fragment, focused once the CV is in
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	pal := theme.ByName(opts.Config.Theme)
	st := theme.NewStyles(pal)

	sections := Sections()
	reg := panel.NewRegistry(Descriptors(sections))
	doc := NewDocumentView(reg, sections, st)
	tb := NewToolbar(st)
	tb.Palette = pal.Name
	tb.Hints = []string{
		"1-6 focus", "tab next", "x close", "m min", "f max",
		"r rescroll", "t palette", "q quit",
	}

	ctrl := &focus.Controller{
		Registry: reg,
		Scroll:   scroll.NewCoordinator(doc),
		Location: config.NewFragmentStore(opts.ConfigDir, opts.Config),
		Tracer:   opts.Tracer,
	}

	target := opts.Fragment
	if target == "" {
		target = HomePanelID
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Title

	a := &AppModel{
		Sections:   sections,
		Registry:   reg,
		Controller: ctrl,
		Document:   doc,
		Toolbar:    tb,
		KeyHandler: NewKeyHandler(newBindings(sections)),
		opts:       opts,
		palette:    pal,
		spinner:    sp,
		loading:    true,
		lastFocus:  target,
		target:     target,
	}

	// Chrome changes move every panel below them, so the layout must
	// be rebuilt. The label set itself is re-read at render time.
	reg.Subscribe(func(e panel.Event) {
		doc.MarkDirty()
		logger.Debug("panel state changed", "id", e.ID, "label", e.Label)
	})
	return a
}

// newBindings wires the navigation keys into the registry.
func newBindings(sections []Section) *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.BindWithDesc("t", func() tea.Msg { return cycleThemeMsg{} }, "Cycle palette")
	reg.Bind("SPC t", func() tea.Msg { return cycleThemeMsg{} })
	reg.BindWithDesc("x", func() tea.Msg { return chromeMsg{opClose} }, "Close panel")
	reg.BindWithDesc("m", func() tea.Msg { return chromeMsg{opMinimize} }, "Minimize panel")
	reg.BindWithDesc("f", func() tea.Msg { return chromeMsg{opMaximize} }, "Maximize panel")
	reg.BindWithDesc("r", func() tea.Msg { return focusStepMsg{Delta: 0} }, "Re-scroll to panel")
	reg.Bind("tab", func() tea.Msg { return focusStepMsg{Delta: 1} })
	reg.Bind("shift+tab", func() tea.Msg { return focusStepMsg{Delta: -1} })
	for i, s := range sections {
		if i == 0 {
			continue // home is reachable via 0
		}
		id := s.ID
		reg.Bind(fmt.Sprintf("%d", i), func() tea.Msg { return focusPanelMsg{ID: id} })
	}
	reg.Bind("0", func() tea.Msg { return focusPanelMsg{ID: HomePanelID} })
	return reg
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		loadCV(a.opts.CVSource),
		tea.Tick(glitchInterval, func(time.Time) tea.Msg { return glitchTickMsg{} }),
	)
}

// loadCV fetches the CV once, off the update loop.
func loadCV(source string) tea.Cmd {
	return func() tea.Msg {
		doc, err := cv.Load(source)
		return cvLoadedMsg{doc: doc, err: err}
	}
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Toolbar.SetWidth(msg.Width)
		a.Document.SetSize(msg.Width, msg.Height, a.Toolbar.Height())
		return a, nil

	case cvLoadedMsg:
		a.loading = false
		if msg.err != nil {
			logger.Error("cv load failed", "source", a.opts.CVSource, "err", msg.err)
			a.Document.SetFallback(fmt.Sprintf("could not load cv from %s", a.opts.CVSource))
			a.Toolbar.Name = "termcv"
		} else {
			a.Document.SetDocument(msg.doc)
			a.Toolbar.Name = strings.ToUpper(msg.doc.Name())
		}
		// Deep link: focus the initial fragment now that content (and
		// therefore geometry) exists.
		return a, a.focusPanel(a.target, false)

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case glitchTickMsg:
		a.Toolbar.Tick()
		return a, tea.Tick(glitchInterval, func(time.Time) tea.Msg { return glitchTickMsg{} })

	case scrollFrameMsg:
		if a.Document.Advance() {
			return a, scrollFrame()
		}
		return a, nil

	case revalidateMsg:
		a.Controller.Scroll.Revalidate(msg.R)
		return a, nil

	case focusPanelMsg:
		return a, a.focusPanel(msg.ID, msg.Force)

	case focusStepMsg:
		return a, a.focusPanel(a.stepTarget(msg.Delta), msg.Delta == 0)

	case chromeMsg:
		switch msg.Op {
		case opClose:
			a.Registry.ToggleClosed(a.lastFocus)
		case opMinimize:
			a.Registry.ToggleMinimized(a.lastFocus)
		case opMaximize:
			a.Registry.ToggleMaximized(a.lastFocus)
		}
		return a, nil

	case cycleThemeMsg:
		return a, a.cycleTheme()

	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		a.handleScrollKey(msg.String())
		return a, nil
	}
	return a, nil
}

// focusPanel runs the open-and-focus operation and schedules the
// animation frames plus the delayed snap correction.
func (a *appModelAdapter) focusPanel(id string, force bool) tea.Cmd {
	res := a.Controller.OpenFocusScroll(id, force)
	if !res.Opened {
		return nil
	}
	a.lastFocus = id
	a.Toolbar.Fragment = id

	var cmds []tea.Cmd
	if a.Document.Animating() {
		cmds = append(cmds, scrollFrame())
	}
	if res.Revalidate != nil {
		r := *res.Revalidate
		// A second focus before this fires does not cancel it; both
		// corrections may run and are self-limiting.
		cmds = append(cmds, tea.Tick(scroll.SettleDelay, func(time.Time) tea.Msg {
			return revalidateMsg{R: r}
		}))
	}
	return tea.Batch(cmds...)
}

// stepTarget resolves tab navigation relative to the current panel.
// Delta 0 means re-focus the current panel (forced re-scroll).
func (a *appModelAdapter) stepTarget(delta int) string {
	idx := 0
	for i, s := range a.Sections {
		if s.ID == a.lastFocus {
			idx = i
			break
		}
	}
	n := len(a.Sections)
	return a.Sections[((idx+delta)%n+n)%n].ID
}

// cycleTheme switches to the next palette and persists the choice.
func (a *appModelAdapter) cycleTheme() tea.Cmd {
	a.palette = theme.Next(a.palette.Name)
	st := theme.NewStyles(a.palette)
	a.Document.SetStyles(st)
	a.Toolbar.SetStyles(st)
	a.Toolbar.Palette = a.palette.Name
	a.spinner.Style = st.Title

	a.opts.Config.Theme = a.palette.Name
	if err := config.Save(a.opts.ConfigDir, a.opts.Config); err != nil {
		logger.Warn("persist palette failed", "err", err)
	}
	return nil
}

// handleScrollKey maps unbound keys to manual document scrolling.
func (a *appModelAdapter) handleScrollKey(key string) {
	switch key {
	case "j", "down":
		a.Document.ScrollManually(1)
	case "k", "up":
		a.Document.ScrollManually(-1)
	case "pgdown":
		a.Document.ScrollManually(a.Document.vp.Height / 2)
	case "pgup":
		a.Document.ScrollManually(-a.Document.vp.Height / 2)
	}
}

func scrollFrame() tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg { return scrollFrameMsg{} })
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.loading {
		return a.spinner.View() + " loading cv…"
	}
	return overlayTop(a.Document.View(), a.Toolbar.View())
}

// overlayTop composites the toolbar over the first lines of the
// scrolled document, which is why the toolbar height participates in
// the scroll offset arithmetic.
func overlayTop(base, overlay string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	for i, l := range overlayLines {
		if i < len(baseLines) {
			baseLines[i] = l
		} else {
			baseLines = append(baseLines, l)
		}
	}
	return strings.Join(baseLines, "\n")
}
