package catalog

import (
	"github.com/arthur-debert/packlist/pkg/errors"
)

// Catalog is the full, ordered definition of packable items together with
// the tag vocabularies the wizard offers.
type Catalog struct {
	Version     string
	Disciplines []Tag
	Extras      []Tag
	Sections    []Section

	items map[string]Item
}

// New builds and validates a catalog
func New(version string, disciplines, extras []Tag, sections []Section) (*Catalog, error) {
	c := &Catalog{
		Version:     version,
		Disciplines: disciplines,
		Extras:      extras,
		Sections:    sections,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the catalog invariants: at least one discipline, unique tag
// and item ids, non-empty labels, and rule tags drawn from the vocabularies.
func (c *Catalog) Validate() error {
	if len(c.Disciplines) == 0 {
		return errors.New(errors.ErrCatalogInvalid, "catalog declares no disciplines")
	}

	vocabulary := make(map[string]bool)
	for _, group := range [][]Tag{c.Disciplines, c.Extras} {
		for _, tag := range group {
			if tag.ID == "" || tag.Label == "" {
				return errors.New(errors.ErrCatalogInvalid, "tag with empty id or label").
					WithDetail("id", tag.ID)
			}
			if vocabulary[tag.ID] {
				return errors.Newf(errors.ErrCatalogInvalid, "tag %q declared twice", tag.ID)
			}
			vocabulary[tag.ID] = true
		}
	}

	items := make(map[string]Item)
	for si, section := range c.Sections {
		if section.Title == "" {
			return errors.Newf(errors.ErrCatalogInvalid, "section %d has an empty title", si)
		}
		for _, item := range section.Items {
			if item.ID == "" || item.Name == "" {
				return errors.Newf(errors.ErrCatalogInvalid, "item with empty id or name in section %q", section.Title).
					WithDetail("id", item.ID)
			}
			if _, exists := items[item.ID]; exists {
				return errors.Newf(errors.ErrDuplicateItem, "item id %q is used more than once", item.ID).
					WithDetail("id", item.ID).
					WithDetail("section", section.Title)
			}
			for _, tag := range item.Rule.Tags() {
				if !vocabulary[tag] {
					return errors.Newf(errors.ErrUnknownTag, "item %q references unknown tag %q", item.ID, tag).
						WithDetail("id", item.ID).
						WithDetail("tag", tag)
				}
			}
			items[item.ID] = item
		}
	}

	c.items = items
	return nil
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// ItemCount returns the total number of items across all sections
func (c *Catalog) ItemCount() int {
	return len(c.items)
}

// IsDiscipline reports whether id belongs to the discipline vocabulary
func (c *Catalog) IsDiscipline(id string) bool {
	_, ok := findTag(c.Disciplines, id)
	return ok
}

// IsExtra reports whether id belongs to the extra vocabulary
func (c *Catalog) IsExtra(id string) bool {
	_, ok := findTag(c.Extras, id)
	return ok
}

// DisciplineLabel returns the human-readable label for a discipline id,
// or the id itself when unknown
func (c *Catalog) DisciplineLabel(id string) string {
	if tag, ok := findTag(c.Disciplines, id); ok {
		return tag.Label
	}
	return id
}

// ExtraLabel returns the human-readable label for an extra id,
// or the id itself when unknown
func (c *Catalog) ExtraLabel(id string) string {
	if tag, ok := findTag(c.Extras, id); ok {
		return tag.Label
	}
	return id
}

// SelectedDisciplines returns the discipline tags present in the set, in
// vocabulary order
func (c *Catalog) SelectedDisciplines(active TagSet) []Tag {
	return selectTags(c.Disciplines, active)
}

// SelectedExtras returns the extra tags present in the set, in vocabulary order
func (c *Catalog) SelectedExtras(active TagSet) []Tag {
	return selectTags(c.Extras, active)
}

// CheckTags returns an ErrUnknownTag error for the first discipline or extra
// id that is not part of the respective vocabulary
func (c *Catalog) CheckTags(disciplines, extras []string) error {
	for _, id := range disciplines {
		if !c.IsDiscipline(id) {
			return errors.Newf(errors.ErrUnknownTag, "unknown discipline %q", id).
				WithDetail("tag", id)
		}
	}
	for _, id := range extras {
		if !c.IsExtra(id) {
			return errors.Newf(errors.ErrUnknownTag, "unknown extra %q", id).
				WithDetail("tag", id)
		}
	}
	return nil
}

func findTag(tags []Tag, id string) (Tag, bool) {
	for _, t := range tags {
		if t.ID == id {
			return t, true
		}
	}
	return Tag{}, false
}

func selectTags(tags []Tag, active TagSet) []Tag {
	var out []Tag
	for _, t := range tags {
		if active.Has(t.ID) {
			out = append(out, t)
		}
	}
	return out
}
