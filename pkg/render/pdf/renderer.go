// Package pdf renders a checklist as a paginated, colour-coded PDF using
// go-pdf/fpdf. Layout is computed by Plan and then drawn page by page.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/go-pdf/fpdf"
)

// DefaultTitle is used when Options.Title is empty
const DefaultTitle = "Competition Packing Checklist"

const fontFamily = "Helvetica"

// Options configure the PDF renderer
type Options struct {
	Title string
	// PageSize is "A4" or "Letter"
	PageSize     string
	Margin       float64
	ContentWidth float64
	Compress     bool
	// Logo is an optional PNG or JPEG drawn in the title banner
	Logo    string
	Palette []Color
}

// DefaultOptions returns A4 settings with the default palette
func DefaultOptions() Options {
	g := DefaultGeometry()
	return Options{
		Title:        DefaultTitle,
		PageSize:     "A4",
		Margin:       g.Margin,
		ContentWidth: g.ContentWidth,
		Compress:     true,
		Palette:      DefaultPalette,
	}
}

// Renderer writes checklists as PDF documents
type Renderer struct {
	opts Options
}

// New creates a new PDF renderer
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.PageSize == "" {
		opts.PageSize = def.PageSize
	}
	if opts.Margin <= 0 {
		opts.Margin = def.Margin
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette
	}
	return &Renderer{opts: opts}
}

// Geometry returns the layout for the configured page size
func (r *Renderer) Geometry() Geometry {
	g := DefaultGeometry()
	if strings.EqualFold(r.opts.PageSize, "letter") {
		g.PageWidth, g.PageHeight = 215.9, 279.4
	}
	g.Margin = r.opts.Margin
	g.ContentWidth = r.opts.ContentWidth
	return g
}

// Render writes the PDF document to w. Any failure inside the PDF library,
// including a panic, is reported as a PDF_RENDER error and nothing is
// written.
func (r *Renderer) Render(w io.Writer, cl *checklist.Checklist) (err error) {
	logger := logging.GetLogger("render.pdf")
	done := logging.LogOperationStart(logger, "render-pdf")
	defer done()

	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Newf(errors.ErrPDFRender, "pdf generation panicked: %v", rec)
		}
		if err != nil {
			logger.Error().Err(err).Msg("PDF generation failed")
		}
	}()

	doc, err := r.build(cl)
	if err != nil {
		return err
	}
	if err := doc.Output(w); err != nil {
		return errors.Wrap(err, errors.ErrPDFRender, "failed to write pdf")
	}
	return nil
}

func (r *Renderer) build(cl *checklist.Checklist) (*fpdf.Fpdf, error) {
	g := r.Geometry()
	size := "A4"
	if strings.EqualFold(r.opts.PageSize, "letter") {
		size = "Letter"
	}

	doc := fpdf.New("P", "mm", size, "")
	doc.SetCompression(r.opts.Compress)
	doc.SetMargins(g.Margin, g.Margin, g.Margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(r.opts.Title, true)
	doc.SetCreator("packlist", true)
	if !cl.GeneratedAt.IsZero() {
		doc.SetCreationDate(cl.GeneratedAt)
		doc.SetModificationDate(cl.GeneratedAt)
	}
	doc.AliasNbPages("")

	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(g.PageHeight - g.Margin - g.FooterHeight/2)
		doc.SetFont(fontFamily, "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	if r.opts.Logo != "" {
		doc.RegisterImageOptions(r.opts.Logo, fpdf.ImageOptions{ReadDpi: true})
		if err := doc.Error(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrPDFRender, "failed to load logo %s", r.opts.Logo)
		}
	}

	doc.SetFont(fontFamily, "", 11)
	wrap := func(text string, width float64) []string {
		return doc.SplitText(tr(text), width)
	}
	pages := Plan(cl, g, wrap)

	for _, page := range pages {
		doc.AddPage()
		if page.Number == 1 {
			r.drawTitle(doc, g, cl, tr)
		}
		for _, block := range page.Blocks {
			switch block.Kind {
			case BlockRunningHeader:
				r.drawRunningHeader(doc, g, block, tr)
			case BlockSection:
				r.drawSection(doc, g, block, tr)
			case BlockItem:
				r.drawItem(doc, g, block)
			}
		}
		if err := doc.Error(); err != nil {
			return nil, errors.Wrap(err, errors.ErrPDFRender, "failed to draw page")
		}
	}

	return doc, nil
}

func (r *Renderer) drawTitle(doc *fpdf.Fpdf, g Geometry, cl *checklist.Checklist, tr func(string) string) {
	x, w := g.Left(), g.Width()
	y := g.Margin

	doc.SetFillColor(31, 58, 95)
	doc.Rect(x, y, w, 16, "F")

	textX := x + 4
	if r.opts.Logo != "" {
		doc.ImageOptions(r.opts.Logo, x+2, y+2, 0, 12, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		textX = x + 20
	}
	doc.SetFont(fontFamily, "B", 16)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(textX, y)
	doc.CellFormat(w-(textX-x), 16, tr(r.opts.Title), "", 0, "L", false, 0, "")

	infoY := y + 19
	doc.SetFillColor(238, 242, 246)
	doc.Rect(x, infoY, w, 17, "F")
	doc.SetFont(fontFamily, "", 10)
	doc.SetTextColor(31, 41, 51)

	lines := []string{"Disciplines: " + strings.Join(cl.DisciplineLabels(), ", ")}
	if extras := cl.ExtraLabels(); len(extras) > 0 {
		lines = append(lines, "Extras: "+strings.Join(extras, ", "))
	}
	if !cl.GeneratedAt.IsZero() {
		lines = append(lines, "Date: "+cl.GeneratedAt.Format("2 January 2006"))
	}
	for i, line := range lines {
		doc.SetXY(x+4, infoY+1+float64(i)*5)
		doc.CellFormat(w-8, 5, tr(line), "", 0, "L", false, 0, "")
	}
}

// drawRunningHeader draws the condensed title and disciplines line that
// opens continuation pages
func (r *Renderer) drawRunningHeader(doc *fpdf.Fpdf, g Geometry, b Block, tr func(string) string) {
	x, w := g.Left(), g.Width()
	h := b.Height - 3

	doc.SetFillColor(31, 58, 95)
	doc.Rect(x, b.Y, w, h, "F")
	doc.SetFont(fontFamily, "B", 10)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(x+3, b.Y)
	doc.CellFormat(w/2, h, tr(r.opts.Title), "", 0, "L", false, 0, "")

	if len(b.Lines) > 0 {
		doc.SetFont(fontFamily, "", 9)
		doc.SetXY(x+w/2, b.Y)
		doc.CellFormat(w/2-3, h, tr(b.Lines[0]), "", 0, "R", false, 0, "")
	}
}

func (r *Renderer) drawSection(doc *fpdf.Fpdf, g Geometry, b Block, tr func(string) string) {
	c := PaletteColor(r.opts.Palette, b.SectionIndex)
	x, w := g.Left(), g.Width()

	doc.SetFillColor(c.R, c.G, c.B)
	doc.Rect(x, b.Y+1, w, b.Height-2, "F")

	title := strings.ToUpper(b.Title)
	if b.Continued {
		title += " (continued)"
	}
	doc.SetFont(fontFamily, "B", 11)
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(x+3, b.Y+1)
	doc.CellFormat(w-6, b.Height-2, tr(title), "", 0, "L", false, 0, "")
}

func (r *Renderer) drawItem(doc *fpdf.Fpdf, g Geometry, b Block) {
	x, w := g.Left(), g.Width()

	if b.Zebra {
		doc.SetFillColor(245, 247, 250)
		doc.Rect(x, b.Y, w, b.Height, "F")
	}

	boxX := x + 2*g.RowPadding
	boxY := b.Y + g.RowPadding + (g.LineHeight-g.BoxSize)/2
	doc.SetLineWidth(0.3)
	doc.SetDrawColor(31, 41, 51)
	if b.Entry.Checked {
		doc.SetFillColor(47, 133, 90)
		doc.SetDrawColor(47, 133, 90)
		doc.Rect(boxX, boxY, g.BoxSize, g.BoxSize, "FD")
		doc.SetDrawColor(255, 255, 255)
		doc.SetLineWidth(0.5)
		doc.Line(boxX+0.8, boxY+g.BoxSize*0.55, boxX+g.BoxSize*0.4, boxY+g.BoxSize-0.8)
		doc.Line(boxX+g.BoxSize*0.4, boxY+g.BoxSize-0.8, boxX+g.BoxSize-0.7, boxY+0.8)
	} else {
		doc.Rect(boxX, boxY, g.BoxSize, g.BoxSize, "D")
	}

	style := ""
	if b.Entry.Required {
		style = "B"
	}
	doc.SetFont(fontFamily, style, 11)
	if b.Entry.Checked {
		doc.SetTextColor(82, 96, 109)
	} else {
		doc.SetTextColor(31, 41, 51)
	}

	textX := boxX + g.BoxSize + 2*g.RowPadding
	for i, line := range b.Lines {
		doc.SetXY(textX, b.Y+g.RowPadding+float64(i)*g.LineHeight)
		doc.CellFormat(g.TextWidth(), g.LineHeight, line, "", 0, "L", false, 0, "")
	}
}
