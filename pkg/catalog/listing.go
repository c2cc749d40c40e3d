package catalog

// Listing is the catalog as shown to users and API clients, with each
// rule spelled out
type Listing struct {
	Version     string           `json:"version"`
	Disciplines []Tag            `json:"disciplines"`
	Extras      []Tag            `json:"extras"`
	Sections    []ListedSection `json:"sections"`
}

// ListedSection is a section of a Listing
type ListedSection struct {
	Title string       `json:"title"`
	Items []ListedItem `json:"items"`
}

// ListedItem is an item of a Listing. When is the rule's String form.
type ListedItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
	When     string `json:"when"`
}

// Listing returns the catalog in listing form
func (c *Catalog) Listing() Listing {
	l := Listing{
		Version:     c.Version,
		Disciplines: c.Disciplines,
		Extras:      c.Extras,
		Sections:    make([]ListedSection, 0, len(c.Sections)),
	}
	for _, s := range c.Sections {
		ls := ListedSection{Title: s.Title, Items: make([]ListedItem, 0, len(s.Items))}
		for _, item := range s.Items {
			ls.Items = append(ls.Items, ListedItem{
				ID:       item.ID,
				Name:     item.Name,
				Required: item.Required,
				When:     item.Rule.String(),
			})
		}
		l.Sections = append(l.Sections, ls)
	}
	return l
}
