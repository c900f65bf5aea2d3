// Package theme defines the retro color palettes and the shared styles
// derived from them. The selected palette is decorative only; panel
// behavior never depends on it.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette names the colors of one retro terminal look.
type Palette struct {
	Name   string
	Accent string // titles, highlights, borders of the focused panel
	Text   string // normal text
	Muted  string // hints, dimmed chrome
	Danger string // error/fallback messages
}

// Palettes are the built-in looks, cycled in this order.
var Palettes = []Palette{
	{Name: "green", Accent: "#33ff33", Text: "#c0ffc0", Muted: "#1f7a1f", Danger: "#ff5544"},
	{Name: "amber", Accent: "#ffb000", Text: "#ffd98a", Muted: "#8a5f00", Danger: "#ff4433"},
	{Name: "cyan", Accent: "#00e5ff", Text: "#b8f4ff", Muted: "#00707d", Danger: "#ff5566"},
	{Name: "paper", Accent: "#222222", Text: "#444444", Muted: "#999999", Danger: "#aa2222"},
}

// ByName returns the palette with the given name, or the first palette
// when the name is unknown (a stale config must not break startup).
func ByName(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Palettes[0]
}

// Next returns the palette after the named one, wrapping around.
func Next(name string) Palette {
	for i, p := range Palettes {
		if p.Name == name {
			return Palettes[(i+1)%len(Palettes)]
		}
	}
	return Palettes[0]
}

// Dim darkens a palette color for unfocused chrome. Falls back to the
// input when it does not parse as hex.
func Dim(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, l*0.55).Hex()
}

// Bright lightens a palette color for the glitch flicker.
func Bright(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l = l + (1-l)*0.5
	return colorful.Hsl(h, s, l).Hex()
}

// Styles holds the shared style set built from one palette.
type Styles struct {
	Title       lipgloss.Style // toolbar banner, focused panel title
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Danger      lipgloss.Style
	Label       lipgloss.Style // chrome label set ("closed", "max", ...)
	Border      lipgloss.Style // focused panel border
	BorderDim   lipgloss.Style // unfocused panel border
	Link        lipgloss.Style
	GlitchSpark lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Danger: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Danger)),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Italic(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Accent)).
			Padding(0, 1),
		BorderDim: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Dim(p.Accent))).
			Padding(0, 1),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Underline(true),
		GlitchSpark: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Bright(p.Accent))),
	}
}
