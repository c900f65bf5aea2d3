// Package cv defines the résumé document and loads it from a JSON file
// or URL. The source is treated as an opaque structured document: no
// schema validation, missing sections are simply empty.
package cv

import "termcv/internal/jsonutil"

// Document is the full résumé content. Every section is optional.
type Document struct {
	// Person holds loose person metadata (name, title, location, ...).
	// Kept as a raw map because the key set varies between CV files.
	Person map[string]interface{} `json:"person"`

	About      []string     `json:"about"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []SkillGroup `json:"skills"`
	Projects   []Project    `json:"projects"`
	Links      []Link       `json:"links"`
}

// Education is one school or program entry.
type Education struct {
	School  string `json:"school"`
	Degree  string `json:"degree"`
	Period  string `json:"period"`
	Details string `json:"details"`
}

// Experience is one job entry.
type Experience struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Period  string   `json:"period"`
	Notes   []string `json:"notes"`
}

// SkillGroup is a named group of skills.
type SkillGroup struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Project is one portfolio entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Link is one external profile or contact link.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// PersonField extracts a string field from the person metadata,
// tolerating absent keys and non-string values.
func (d *Document) PersonField(key string) string {
	if d == nil || d.Person == nil {
		return ""
	}
	if s := jsonutil.GetString(d.Person, key); s != "" {
		return s
	}
	if v, ok := d.Person[key]; ok {
		return jsonutil.ToString(v)
	}
	return ""
}

// Name returns the person's display name, falling back to a placeholder
// so the toolbar banner never renders empty.
func (d *Document) Name() string {
	return jsonutil.GetStringOr(d.person(), "name", "anonymous")
}

func (d *Document) person() map[string]interface{} {
	if d == nil {
		return nil
	}
	return d.Person
}
