// Package catalog defines the packable items of a competition checklist.
//
// A catalog is an ordered list of sections, each holding an ordered list of
// items. Every item carries an applicability rule:
//
//   - Always: the item is packed for every selection
//   - AnyOf(tags...): the item is packed when any listed tag is active
//
// Tags come from two vocabularies declared in the catalog itself: disciplines
// (chosen in the first wizard step) and extras (chosen in the second).
//
// # File Format
//
// Catalogs are TOML documents. The default catalog is embedded in the binary;
// a custom one can be supplied through the `catalog.path` setting:
//
//	version = "2024.2"
//
//	[[disciplines]]
//	id = "dressage"
//	label = "Dressage"
//
//	[[sections]]
//	title = "Horse Tack"
//
//	  [[sections.items]]
//	  id = "double-bridle"
//	  name = "Double Bridle"
//	  when = ["dressage"]
//
// A loaded catalog is validated and must be treated as read-only.
package catalog
