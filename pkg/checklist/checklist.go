package checklist

import (
	"time"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/selection"
)

// Entry is one visible item with its resolved checked state
type Entry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Checked  bool   `json:"checked"`
}

// Section is a visible section. Index is the position among visible
// sections and drives colour cycling in the PDF.
type Section struct {
	Title   string  `json:"title"`
	Index   int     `json:"index"`
	Entries []Entry `json:"items"`
}

// Checklist is the shared model handed to every renderer
type Checklist struct {
	CatalogVersion string        `json:"catalogVersion"`
	Disciplines    []catalog.Tag `json:"disciplines"`
	Extras         []catalog.Tag `json:"extras"`
	Sections       []Section     `json:"sections"`
	GeneratedAt    time.Time     `json:"generatedAt"`
}

// Stats summarises a checklist
type Stats struct {
	Sections int `json:"sections"`
	Items    int `json:"items"`
	Checked  int `json:"checked"`
	Required int `json:"required"`
}

// Build derives the checklist for a selection. It is the single derivation
// shared by all outputs of one export.
func Build(cat *catalog.Catalog, state *selection.State, now time.Time) *Checklist {
	active := state.ActiveTags()
	filtered := Filter(cat, active)

	cl := &Checklist{
		CatalogVersion: cat.Version,
		Disciplines:    cat.SelectedDisciplines(active),
		Extras:         cat.SelectedExtras(active),
		Sections:       make([]Section, 0, len(filtered)),
		GeneratedAt:    now,
	}

	for i, fs := range filtered {
		section := Section{Title: fs.Title, Index: i, Entries: make([]Entry, 0, len(fs.Items))}
		for _, item := range fs.Items {
			section.Entries = append(section.Entries, Entry{
				ID:       item.ID,
				Name:     item.Name,
				Required: item.Required,
				Checked:  state.IsChecked(item.ID),
			})
		}
		cl.Sections = append(cl.Sections, section)
	}

	return cl
}

// DisciplineLabels returns the labels of the selected disciplines
func (c *Checklist) DisciplineLabels() []string {
	return labels(c.Disciplines)
}

// ExtraLabels returns the labels of the selected extras
func (c *Checklist) ExtraLabels() []string {
	return labels(c.Extras)
}

// Entries returns every visible entry in render order
func (c *Checklist) Entries() []Entry {
	var out []Entry
	for _, s := range c.Sections {
		out = append(out, s.Entries...)
	}
	return out
}

// Stats counts sections, items, checked and required items
func (c *Checklist) Stats() Stats {
	st := Stats{Sections: len(c.Sections)}
	for _, s := range c.Sections {
		for _, e := range s.Entries {
			st.Items++
			if e.Checked {
				st.Checked++
			}
			if e.Required {
				st.Required++
			}
		}
	}
	return st
}

func labels(tags []catalog.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Label)
	}
	return out
}
