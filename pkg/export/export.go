// Package export produces the user-facing artifacts of a checklist: text and
// PDF downloads, the printable page and the email hand-off. Each call
// renders from one *checklist.Checklist, so all artifacts of an export agree.
package export

import (
	"bytes"
	"path/filepath"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/config"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/arthur-debert/packlist/pkg/render"
	"github.com/arthur-debert/packlist/pkg/render/email"
	"github.com/arthur-debert/packlist/pkg/render/html"
	"github.com/arthur-debert/packlist/pkg/render/pdf"
	"github.com/arthur-debert/packlist/pkg/render/text"
	"github.com/spf13/afero"
)

// PDFFallbackNotice is shown when the PDF could not be generated
const PDFFallbackNotice = "The PDF could not be generated, a text checklist was downloaded instead."

// Options configure an Exporter
type Options struct {
	Dir          string
	TextFilename string
	PDFFilename  string
	HTMLFilename string
	Render       render.Options
}

// OptionsFromConfig maps configuration onto exporter options
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	palette, err := pdf.ParsePalette(cfg.PDF.Palette)
	if err != nil {
		return Options{}, errors.Wrap(err, errors.ErrConfigInvalid, "invalid pdf.palette")
	}

	return Options{
		Dir:          cfg.Export.Dir,
		TextFilename: cfg.Export.TextFilename,
		PDFFilename:  cfg.Export.PDFFilename,
		HTMLFilename: cfg.Export.HTMLFilename,
		Render: render.Options{
			Text: text.Options{Header: cfg.Text.Header},
			PDF: pdf.Options{
				Title:        cfg.PDF.Title,
				PageSize:     cfg.PDF.PageSize,
				Margin:       cfg.PDF.Margin,
				ContentWidth: cfg.PDF.ContentWidth,
				Compress:     cfg.PDF.Compress,
				Logo:         cfg.PDF.Logo,
				Palette:      palette,
			},
			HTML:       html.Options{AutoPrint: true, Palette: hexPalette(palette)},
			Email:      email.Options{To: cfg.Email.To, Subject: cfg.Email.Subject, Text: text.Options{Header: cfg.Text.Header}},
			JSONIndent: "  ",
		},
	}, nil
}

func hexPalette(colors []pdf.Color) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		out = append(out, c.Hex())
	}
	return out
}

// Artifact is a rendered export held in memory
type Artifact struct {
	// Format is the format actually produced, FormatText after a PDF fallback
	Format    render.Format
	Requested render.Format
	Filename  string
	MIME      string
	Data      []byte
	Fallback  bool
	Notice    string
}

// Result describes a completed export
type Result struct {
	Format   render.Format
	Path     string
	URI      string
	Fallback bool
	Notice   string
	Size     int
}

// Exporter renders checklists and writes them through an afero filesystem
type Exporter struct {
	fs     afero.Fs
	opts   Options
	opener Opener
}

// New creates an Exporter. A nil opener disables opening files and URIs.
func New(fs afero.Fs, opts Options, opener Opener) *Exporter {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.TextFilename == "" {
		opts.TextFilename = "competition-packing-checklist.txt"
	}
	if opts.PDFFilename == "" {
		opts.PDFFilename = "competition-packing-checklist.pdf"
	}
	if opts.HTMLFilename == "" {
		opts.HTMLFilename = "competition-packing-checklist.html"
	}
	return &Exporter{fs: fs, opts: opts, opener: opener}
}

// Dir returns the directory artifacts are written to
func (e *Exporter) Dir() string {
	return e.opts.Dir
}

// Render produces an in-memory artifact. A failing PDF falls back to the
// text document with a notice; any other renderer error is returned.
func (e *Exporter) Render(format render.Format, cl *checklist.Checklist) (*Artifact, error) {
	logger := logging.GetLogger("export")

	art, err := e.render(format, cl)
	if err == nil {
		return art, nil
	}
	if format != render.FormatPDF {
		return nil, err
	}

	logger.Warn().Err(err).Msg("PDF generation failed, falling back to text")
	art, terr := e.render(render.FormatText, cl)
	if terr != nil {
		return nil, terr
	}
	art.Requested = render.FormatPDF
	art.Fallback = true
	art.Notice = PDFFallbackNotice
	return art, nil
}

func (e *Exporter) render(format render.Format, cl *checklist.Checklist) (*Artifact, error) {
	r, err := render.New(format, e.opts.Render, nil)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, cl); err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.ErrRender, "failed to render %s", format)
	}

	return &Artifact{
		Format:    format,
		Requested: format,
		Filename:  e.filename(format),
		MIME:      format.MIME(),
		Data:      buf.Bytes(),
	}, nil
}

func (e *Exporter) filename(format render.Format) string {
	switch format {
	case render.FormatPDF:
		return e.opts.PDFFilename
	case render.FormatHTML:
		return e.opts.HTMLFilename
	case render.FormatText:
		return e.opts.TextFilename
	default:
		return "competition-packing-checklist" + format.Extension()
	}
}

// Text writes the plain text download
func (e *Exporter) Text(cl *checklist.Checklist) (*Result, error) {
	return e.write(render.FormatText, cl)
}

// PDF writes the PDF download, or the text download when the PDF fails
func (e *Exporter) PDF(cl *checklist.Checklist) (*Result, error) {
	return e.write(render.FormatPDF, cl)
}

// Print writes the printable page and opens it
func (e *Exporter) Print(cl *checklist.Checklist) (*Result, error) {
	res, err := e.write(render.FormatHTML, cl)
	if err != nil {
		return nil, err
	}
	e.open(res.Path)
	return res, nil
}

// Email builds the mailto: URI and hands it to the mail client
func (e *Exporter) Email(cl *checklist.Checklist) (*Result, error) {
	art, err := e.Render(render.FormatEmail, cl)
	if err != nil {
		return nil, err
	}
	res := &Result{Format: render.FormatEmail, URI: string(art.Data), Size: len(art.Data)}
	e.open(res.URI)
	return res, nil
}

// Export dispatches to the method for format
func (e *Exporter) Export(format render.Format, cl *checklist.Checklist) (*Result, error) {
	switch format {
	case render.FormatEmail:
		return e.Email(cl)
	case render.FormatHTML:
		return e.Print(cl)
	default:
		return e.write(format, cl)
	}
}

func (e *Exporter) write(format render.Format, cl *checklist.Checklist) (*Result, error) {
	logger := logging.GetLogger("export")
	done := logging.LogOperationStart(logger, "export-"+format.String())
	defer done()

	art, err := e.Render(format, cl)
	if err != nil {
		return nil, err
	}

	if err := e.fs.MkdirAll(e.opts.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to create export directory %s", e.opts.Dir).
			WithDetail("path", e.opts.Dir)
	}
	path := filepath.Join(e.opts.Dir, art.Filename)
	if err := afero.WriteFile(e.fs, path, art.Data, 0o644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Info().
		Str("format", art.Format.String()).
		Str("path", path).
		Int("bytes", len(art.Data)).
		Bool("fallback", art.Fallback).
		Msg("checklist exported")

	return &Result{
		Format:   art.Format,
		Path:     path,
		Fallback: art.Fallback,
		Notice:   art.Notice,
		Size:     len(art.Data),
	}, nil
}

func (e *Exporter) open(target string) {
	if e.opener == nil {
		return
	}
	if err := e.opener(target); err != nil {
		logger := logging.GetLogger("export")
		logger.Warn().Err(err).Str("target", target).Msg("could not open export")
	}
}
