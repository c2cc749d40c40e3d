package export_test

import (
	"bytes"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/config"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/export"
	"github.com/arthur-debert/packlist/pkg/render"
	"github.com/arthur-debert/packlist/pkg/render/text"
	"github.com/arthur-debert/packlist/pkg/selection"
	"github.com/arthur-debert/packlist/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportDir = "/home/rider/Downloads"

func build(t *testing.T) *checklist.Checklist {
	state := selection.New()
	state.SetDiscipline("eventing", true)
	state.SetChecked("xc-boots", true)
	return checklist.Build(testutil.SmallCatalog(t), state, testutil.FixedTime)
}

type recorder struct {
	opened []string
}

func (r *recorder) open(target string) error {
	r.opened = append(r.opened, target)
	return nil
}

func newExporter(t *testing.T, mutate func(o *export.Options)) (*export.Exporter, afero.Fs, *recorder) {
	t.Helper()
	cfg := config.Default()
	cfg.Export.Dir = exportDir
	cfg.PDF.Compress = false

	opts, err := export.OptionsFromConfig(cfg)
	require.NoError(t, err)
	if mutate != nil {
		mutate(&opts)
	}

	fs := afero.NewMemMapFs()
	rec := &recorder{}
	return export.New(fs, opts, rec.open), fs, rec
}

func TestText(t *testing.T) {
	exp, fs, rec := newExporter(t, nil)
	cl := build(t)

	res, err := exp.Text(cl)
	require.NoError(t, err)

	assert.Equal(t, render.FormatText, res.Format)
	assert.Equal(t, filepath.Join(exportDir, "competition-packing-checklist.txt"), res.Path)
	assert.False(t, res.Fallback)

	data, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.Equal(t, text.New(text.Options{}).String(cl), string(data))
	assert.Equal(t, len(data), res.Size)
	assert.Empty(t, rec.opened, "downloads are not opened")
}

func TestPDF(t *testing.T) {
	exp, fs, _ := newExporter(t, nil)

	res, err := exp.PDF(build(t))
	require.NoError(t, err)

	assert.Equal(t, render.FormatPDF, res.Format)
	assert.False(t, res.Fallback)
	assert.Empty(t, res.Notice)

	data, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "Cross-Country Boots")
}

func TestPDF_FallsBackToText(t *testing.T) {
	exp, fs, _ := newExporter(t, func(o *export.Options) {
		o.Render.PDF.Logo = "/does/not/exist.png"
	})
	cl := build(t)

	res, err := exp.PDF(cl)
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Equal(t, export.PDFFallbackNotice, res.Notice)
	assert.Equal(t, render.FormatText, res.Format)
	assert.Equal(t, filepath.Join(exportDir, "competition-packing-checklist.txt"), res.Path)

	data, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.Equal(t, text.New(text.Options{}).String(cl), string(data))

	exists, err := afero.Exists(fs, filepath.Join(exportDir, "competition-packing-checklist.pdf"))
	require.NoError(t, err)
	assert.False(t, exists, "no partial pdf is left behind")
}

func TestPrint(t *testing.T) {
	exp, fs, rec := newExporter(t, nil)

	res, err := exp.Print(build(t))
	require.NoError(t, err)

	assert.Equal(t, render.FormatHTML, res.Format)
	assert.Equal(t, []string{res.Path}, rec.opened)

	data, err := afero.ReadFile(fs, res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "window.print()")
	assert.Contains(t, string(data), `data-item-id="xc-boots"`)
}

func TestEmail(t *testing.T) {
	exp, fs, rec := newExporter(t, func(o *export.Options) {
		o.Render.Email.To = "groom@example.com"
	})
	cl := build(t)

	res, err := exp.Email(cl)
	require.NoError(t, err)

	require.Len(t, rec.opened, 1)
	assert.Equal(t, res.URI, rec.opened[0])

	u, err := url.Parse(res.URI)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "My Competition Packing Checklist", u.Query().Get("subject"))
	assert.Equal(t, text.New(text.Options{}).String(cl), u.Query().Get("body"))

	exists, err := afero.DirExists(fs, exportDir)
	require.NoError(t, err)
	assert.False(t, exists, "email writes no files")
}

func TestRender_Artifact(t *testing.T) {
	exp, _, _ := newExporter(t, nil)

	art, err := exp.Render(render.FormatJSON, build(t))
	require.NoError(t, err)
	assert.Equal(t, "application/json", art.MIME)
	assert.Equal(t, "competition-packing-checklist.json", art.Filename)
	assert.Contains(t, string(art.Data), `"xc-boots"`)
}

func TestExport_Dispatch(t *testing.T) {
	exp, _, rec := newExporter(t, nil)
	cl := build(t)

	res, err := exp.Export(render.FormatHTML, cl)
	require.NoError(t, err)
	assert.Equal(t, render.FormatHTML, res.Format)

	res, err = exp.Export(render.FormatEmail, cl)
	require.NoError(t, err)
	assert.NotEmpty(t, res.URI)
	assert.Len(t, rec.opened, 2)
}

func TestWrite_ReadOnlyFs(t *testing.T) {
	cfg := config.Default()
	cfg.Export.Dir = exportDir
	opts, err := export.OptionsFromConfig(cfg)
	require.NoError(t, err)

	exp := export.New(afero.NewReadOnlyFs(afero.NewMemMapFs()), opts, nil)
	_, err = exp.Text(build(t))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestOptionsFromConfig_BadPalette(t *testing.T) {
	cfg := config.Default()
	cfg.PDF.Palette = []string{"nope"}

	_, err := export.OptionsFromConfig(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestOptionsFromConfig_PrintPaletteFollowsPDF(t *testing.T) {
	cfg := config.Default()
	cfg.PDF.Palette = []string{"#112233", "AABBCC"}

	opts, err := export.OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Len(t, opts.Render.PDF.Palette, 2)
	assert.Equal(t, []string{"#112233", "#aabbcc"}, opts.Render.HTML.Palette)
}
