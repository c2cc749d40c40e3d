package styles_test

import (
	"testing"

	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := styles.Default()
	require.NotNil(t, reg)

	for _, name := range []string{
		"Title", "Subtitle", "Step", "SectionHeader", "Cursor", "Selected",
		"Checked", "Unchecked", "Required", "Muted", "Notice", "Error", "Success", "Help", "Summary",
	} {
		assert.True(t, reg.Has(name), "style %s should be defined", name)
	}

	assert.True(t, reg.Get("Title").GetBold())
	assert.True(t, reg.Get("Notice").GetItalic())
	assert.Equal(t, "#2f855a", reg.Color("success").Light)
}

func TestGet_UnknownStyle(t *testing.T) {
	style := styles.Get("DoesNotExist")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		reg, err := styles.Load([]byte(`
colors:
  red: {light: "#ff0000", dark: "#ff8888"}
styles:
  Alert: {bold: true, foreground: red, paddingLeft: 2}
`))
		require.NoError(t, err)
		assert.True(t, reg.Get("Alert").GetBold())
		assert.Equal(t, 2, reg.Get("Alert").GetPaddingLeft())
	})

	t.Run("unknown_colour", func(t *testing.T) {
		_, err := styles.Load([]byte(`
styles:
  Alert: {foreground: nope}
`))
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigInvalid, errors.GetErrorCode(err))
	})

	t.Run("bad_yaml", func(t *testing.T) {
		_, err := styles.Load([]byte("styles: [unclosed"))
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
	})
}
