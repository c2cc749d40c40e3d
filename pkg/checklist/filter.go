package checklist

import (
	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/logging"
)

// Filter returns the sections and items of the catalog that apply to the
// active tags. Catalog order is preserved, and sections left with no items
// are dropped. The catalog is not modified.
func Filter(cat *catalog.Catalog, active catalog.TagSet) []catalog.Section {
	logger := logging.GetLogger("checklist.filter")

	var out []catalog.Section
	for _, section := range cat.Sections {
		var items []catalog.Item
		for _, item := range section.Items {
			if item.Rule.Applies(active) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			logger.Trace().Str("section", section.Title).Msg("Section has no applicable items")
			continue
		}
		out = append(out, catalog.Section{Title: section.Title, Items: items})
	}

	logger.Debug().
		Strs("tags", active.Sorted()).
		Int("sections", len(out)).
		Msg("Filtered catalog")

	return out
}
