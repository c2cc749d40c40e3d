package json_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/arthur-debert/packlist/pkg/checklist"
	pljson "github.com/arthur-debert/packlist/pkg/render/json"
	"github.com/arthur-debert/packlist/pkg/selection"
	"github.com/arthur-debert/packlist/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	state := selection.New()
	state.SetDiscipline("eventing", true)
	state.SetChecked("xc-boots", true)
	cl := checklist.Build(testutil.SmallCatalog(t), state, testutil.FixedTime)

	var buf bytes.Buffer
	require.NoError(t, pljson.New("  ").Render(&buf, cl))

	var decoded struct {
		CatalogVersion string `json:"catalogVersion"`
		Disciplines    []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"disciplines"`
		Sections []struct {
			Title string `json:"title"`
			Items []struct {
				ID      string `json:"id"`
				Checked bool   `json:"checked"`
			} `json:"items"`
		} `json:"sections"`
		Stats checklist.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "test", decoded.CatalogVersion)
	require.Len(t, decoded.Disciplines, 1)
	assert.Equal(t, "Eventing", decoded.Disciplines[0].Label)
	assert.Equal(t, "Tack", decoded.Sections[0].Title)
	assert.Equal(t, "xc-boots", decoded.Sections[0].Items[1].ID)
	assert.True(t, decoded.Sections[0].Items[1].Checked)
	assert.Equal(t, cl.Stats(), decoded.Stats)
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pljson.New("").RenderError(&buf, errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}
