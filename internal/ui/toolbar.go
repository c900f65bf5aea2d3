package ui

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termcv/internal/theme"
	"termcv/internal/ui/textutil"
)

// glitchRunes are the substitution characters for the banner flicker.
var glitchRunes = []rune("▓▒░█<>/\\|#$%&")

// Toolbar is the fixed bar overlaid on top of the document: banner
// with the person's name, the current fragment, the palette name, and
// the key hints. The banner runs a decorative glitch animation.
type Toolbar struct {
	Name     string
	Fragment string
	Palette  string
	Hints    []string

	styles theme.Styles
	width  int
	glitch map[int]rune // banner positions currently glitched
	rng    *rand.Rand
}

// NewToolbar creates the toolbar.
func NewToolbar(st theme.Styles) *Toolbar {
	return &Toolbar{
		styles: st,
		glitch: map[int]rune{},
		rng:    rand.New(rand.NewSource(0x7e5)),
	}
}

// SetStyles switches the palette-derived styles.
func (t *Toolbar) SetStyles(st theme.Styles) { t.styles = st }

// SetWidth updates the terminal width.
func (t *Toolbar) SetWidth(w int) { t.width = w }

// Tick advances the glitch animation one frame: previous substitutions
// heal, and occasionally a few new banner positions get scrambled.
// Purely decorative; nothing reads this state.
func (t *Toolbar) Tick() {
	t.glitch = map[int]rune{}
	if len(t.Name) == 0 || t.rng.Intn(4) != 0 {
		return
	}
	n := 1 + t.rng.Intn(3)
	for i := 0; i < n; i++ {
		pos := t.rng.Intn(len(t.Name))
		t.glitch[pos] = glitchRunes[t.rng.Intn(len(glitchRunes))]
	}
}

// banner renders the name with any active glitch substitutions.
func (t *Toolbar) banner() string {
	if len(t.glitch) == 0 {
		return t.styles.Title.Render(t.Name)
	}
	var b strings.Builder
	for i, r := range t.Name {
		if g, ok := t.glitch[i]; ok {
			b.WriteString(t.styles.GlitchSpark.Render(string(g)))
		} else {
			b.WriteString(t.styles.Title.Render(string(r)))
		}
	}
	return b.String()
}

// View renders the toolbar. Height is stable across glitch frames so
// the scroll offset does not wobble.
func (t *Toolbar) View() string {
	st := t.styles
	left := t.banner()
	if t.Fragment != "" {
		left += "  " + st.Muted.Render(textutil.Truncate("#"+t.Fragment, 20))
	}
	right := st.Muted.Render("palette:" + t.Palette)

	gap := t.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	top := left + strings.Repeat(" ", gap) + right

	hints := st.Muted.Render(strings.Join(t.Hints, "  "))
	rule := st.Muted.Render(strings.Repeat("─", max(t.width, 1)))
	return top + "\n" + hints + "\n" + rule
}

// Height reports the toolbar's rendered height.
func (t *Toolbar) Height() int {
	return lipgloss.Height(t.View())
}
