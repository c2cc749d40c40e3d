package testutil

import (
	"testing"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallCatalogTOML_MatchesSmallCatalog(t *testing.T) {
	want := SmallCatalog(t)

	path := WriteCatalog(t, t.TempDir())
	got, err := catalog.Load(afero.NewOsFs(), path)
	require.NoError(t, err)

	assert.Equal(t, want.Disciplines, got.Disciplines)
	assert.Equal(t, want.Extras, got.Extras)
	require.Len(t, got.Sections, len(want.Sections))
	for i := range want.Sections {
		assert.Equal(t, want.Sections[i].Title, got.Sections[i].Title)
		for j, item := range want.Sections[i].Items {
			assert.Equal(t, item.ID, got.Sections[i].Items[j].ID)
			assert.Equal(t, item.Required, got.Sections[i].Items[j].Required)
			assert.Equal(t, item.Rule.String(), got.Sections[i].Items[j].Rule.String())
		}
	}
}
