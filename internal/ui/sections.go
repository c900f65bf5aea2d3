package ui

import (
	"fmt"
	"strings"

	"termcv/internal/cv"
	"termcv/internal/panel"
	"termcv/internal/theme"
	"termcv/internal/ui/textutil"
)

// HomePanelID is the default deep-link target when no fragment is
// given.
const HomePanelID = "home"

// Section binds a panel id to its renderer. The order here is the
// document order and the index numbering on the home panel.
type Section struct {
	ID           string
	Title        string
	AdjustScroll bool
	Render       func(doc *cv.Document, st theme.Styles, width int) []string
}

// Sections is the fixed panel set discovered at startup. Only the home
// panel skips scroll adjustment: it sits at the document top already.
func Sections() []Section {
	return []Section{
		{ID: HomePanelID, Title: "index", AdjustScroll: false, Render: renderHome},
		{ID: "about", Title: "about", AdjustScroll: true, Render: renderAbout},
		{ID: "education", Title: "education", AdjustScroll: true, Render: renderEducation},
		{ID: "experience", Title: "experience", AdjustScroll: true, Render: renderExperience},
		{ID: "skills", Title: "skills", AdjustScroll: true, Render: renderSkills},
		{ID: "projects", Title: "projects", AdjustScroll: true, Render: renderProjects},
		{ID: "links", Title: "links", AdjustScroll: true, Render: renderLinks},
	}
}

// Descriptors converts the section list into registry descriptors.
func Descriptors(sections []Section) []panel.Descriptor {
	out := make([]panel.Descriptor, len(sections))
	for i, s := range sections {
		out[i] = panel.Descriptor{ID: s.ID, AdjustScroll: s.AdjustScroll}
	}
	return out
}

func renderHome(doc *cv.Document, st theme.Styles, width int) []string {
	lines := []string{
		st.Text.Render(doc.PersonField("title")),
		st.Muted.Render(doc.PersonField("location")),
		"",
	}
	for i, s := range Sections() {
		if s.ID == HomePanelID {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			st.Muted.Render(fmt.Sprintf("[%d]", i)),
			st.Link.Render(s.ID)))
	}
	return lines
}

func renderAbout(doc *cv.Document, st theme.Styles, width int) []string {
	var lines []string
	for _, para := range doc.About {
		lines = append(lines, wrap(para, width, st.Text)...)
	}
	return lines
}

func renderEducation(doc *cv.Document, st theme.Styles, width int) []string {
	var lines []string
	for _, e := range doc.Education {
		lines = append(lines, st.Text.Render(e.School)+"  "+st.Muted.Render(e.Period))
		if e.Degree != "" {
			lines = append(lines, st.Muted.Render("  "+e.Degree))
		}
		if e.Details != "" {
			lines = append(lines, wrap("  "+e.Details, width, st.Muted)...)
		}
	}
	return lines
}

func renderExperience(doc *cv.Document, st theme.Styles, width int) []string {
	var lines []string
	for i, e := range doc.Experience {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, st.Text.Render(e.Role)+" @ "+st.Text.Render(e.Company)+"  "+st.Muted.Render(e.Period))
		for _, n := range e.Notes {
			lines = append(lines, wrap("  * "+n, width, st.Muted)...)
		}
	}
	return lines
}

func renderSkills(doc *cv.Document, st theme.Styles, width int) []string {
	var lines []string
	for _, g := range doc.Skills {
		lines = append(lines, st.Text.Render(g.Name+":")+" "+st.Muted.Render(strings.Join(g.Items, ", ")))
	}
	return lines
}

func renderProjects(doc *cv.Document, st theme.Styles, width int) []string {
	var lines []string
	for _, p := range doc.Projects {
		lines = append(lines, st.Text.Render(p.Name))
		if p.Description != "" {
			lines = append(lines, wrap("  "+p.Description, width, st.Muted)...)
		}
		if p.URL != "" {
			lines = append(lines, "  "+st.Link.Render(textutil.Truncate(p.URL, width-2)))
		}
	}
	return lines
}

func renderLinks(doc *cv.Document, st theme.Styles, width int) []string {
	var lines []string
	for _, l := range doc.Links {
		url := textutil.Truncate(l.URL, width-len(l.Label)-2)
		lines = append(lines, st.Muted.Render(l.Label+": ")+st.Link.Render(url))
	}
	return lines
}

// wrap breaks text into styled lines no wider than width. Words longer
// than the width are emitted on their own line unbroken.
func wrap(text string, width int, style interface{ Render(...string) string }) []string {
	if width <= 0 {
		return []string{style.Render(text)}
	}
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, style.Render(cur))
			cur = word
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, style.Render(cur))
	}
	return lines
}
