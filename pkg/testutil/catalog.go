// Package testutil holds fixtures shared by packlist tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/stretchr/testify/require"
)

// FixedTime is the generation timestamp used by renderer tests
var FixedTime = time.Date(2024, time.May, 18, 9, 30, 0, 0, time.UTC)

// SmallCatalog returns a compact catalog covering every rule shape:
// unconditional items, single-tag and multi-tag rules, an extras-only section
// and a section that disappears unless eventing is selected.
func SmallCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New("test",
		[]catalog.Tag{
			{ID: "dressage", Label: "Dressage"},
			{ID: "showjumping", Label: "Show Jumping"},
			{ID: "eventing", Label: "Eventing"},
		},
		[]catalog.Tag{
			{ID: "overnight", Label: "Overnight Stay"},
		},
		[]catalog.Section{
			{Title: "Tack", Items: []catalog.Item{
				{ID: "bridle", Name: "Bridle", Required: true},
				{ID: "double-bridle", Name: "Double Bridle", Rule: catalog.AnyOf("dressage")},
				{ID: "xc-boots", Name: "Cross-Country Boots", Rule: catalog.AnyOf("eventing")},
				{ID: "studs", Name: "Studs", Rule: catalog.AnyOf("eventing", "showjumping")},
			}},
			{Title: "Care", Items: []catalog.Item{
				{ID: "headcollar", Name: "Headcollar"},
				{ID: "passport", Name: "Passport", Required: true},
			}},
			{Title: "Overnight Extras", Items: []catalog.Item{
				{ID: "bedding", Name: "Bedding", Rule: catalog.AnyOf("overnight")},
				{ID: "head-torch", Name: "Head Torch", Rule: catalog.AnyOf("overnight")},
			}},
			{Title: "Cross-Country", Items: []catalog.Item{
				{ID: "stopwatch", Name: "Stopwatch", Rule: catalog.AnyOf("eventing")},
			}},
		},
	)
	require.NoError(t, err)
	return cat
}

// DefaultCatalog returns the embedded production catalog
func DefaultCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

// SmallCatalogTOML is SmallCatalog in catalog file form
const SmallCatalogTOML = `
version = "test"

[[disciplines]]
id = "dressage"
label = "Dressage"

[[disciplines]]
id = "showjumping"
label = "Show Jumping"

[[disciplines]]
id = "eventing"
label = "Eventing"

[[extras]]
id = "overnight"
label = "Overnight Stay"

[[sections]]
title = "Tack"

  [[sections.items]]
  id = "bridle"
  name = "Bridle"
  required = true

  [[sections.items]]
  id = "double-bridle"
  name = "Double Bridle"
  when = ["dressage"]

  [[sections.items]]
  id = "xc-boots"
  name = "Cross-Country Boots"
  when = ["eventing"]

  [[sections.items]]
  id = "studs"
  name = "Studs"
  when = ["eventing", "showjumping"]

[[sections]]
title = "Care"

  [[sections.items]]
  id = "headcollar"
  name = "Headcollar"

  [[sections.items]]
  id = "passport"
  name = "Passport"
  required = true

[[sections]]
title = "Overnight Extras"

  [[sections.items]]
  id = "bedding"
  name = "Bedding"
  when = ["overnight"]

  [[sections.items]]
  id = "head-torch"
  name = "Head Torch"
  when = ["overnight"]

[[sections]]
title = "Cross-Country"

  [[sections.items]]
  id = "stopwatch"
  name = "Stopwatch"
  when = ["eventing"]
`

// WriteCatalog writes SmallCatalogTOML into dir and returns its path
func WriteCatalog(t testing.TB, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(SmallCatalogTOML), 0o644))
	return path
}
