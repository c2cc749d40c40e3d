// Package html renders a checklist as a self-contained printable HTML
// document. Styles are inlined, checked items carry the "checked" class and
// the page opens the print dialog once loaded.
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/beevik/etree"
)

// DefaultTitle is used when Options.Title is empty
const DefaultTitle = "Competition Packing Checklist"

// CheckedClass marks checked item rows
const CheckedClass = "checked"

// DefaultPalette matches the default PDF section colours
var DefaultPalette = []string{"#2e6f95", "#5a8f29", "#b5651d", "#7b4f9d", "#a23b3b"}

// Options configure the print renderer
type Options struct {
	Title string
	// AutoPrint adds the script that opens the print dialog on load
	AutoPrint bool
	// Palette holds "#rrggbb" section header colours, DefaultPalette when empty
	Palette []string
}

// Renderer writes printable HTML documents
type Renderer struct {
	opts Options
}

// New creates a new print renderer
func New(opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	opts.Palette = ResolvePalette(opts.Palette)
	return &Renderer{opts: opts}
}

// ResolvePalette returns palette, or DefaultPalette when it is empty
func ResolvePalette(palette []string) []string {
	if len(palette) == 0 {
		return DefaultPalette
	}
	return palette
}

// PaletteCSS returns the ".palette-N h2" rules for palette
func PaletteCSS(palette []string) string {
	var b strings.Builder
	for i, c := range ResolvePalette(palette) {
		fmt.Fprintf(&b, ".palette-%d h2 { background: %s; }\n", i, c)
	}
	return b.String()
}

const stylesheet = `
body { font-family: Helvetica, Arial, sans-serif; color: #1f2933; margin: 24px; }
header { background: #1f3a5f; color: #ffffff; padding: 16px 20px; border-radius: 6px; }
header h1 { margin: 0; font-size: 22px; }
.info { background: #eef2f6; padding: 10px 20px; margin: 12px 0 20px; border-radius: 6px; font-size: 13px; }
.info p { margin: 4px 0; }
section { margin-bottom: 18px; page-break-inside: avoid; }
section h2 { font-size: 15px; text-transform: uppercase; letter-spacing: 0.05em; padding: 6px 10px; margin: 0; color: #ffffff; }
ul { list-style: none; margin: 0; padding: 0; }
li { padding: 6px 10px; font-size: 14px; }
li:nth-child(even) { background: #f5f7fa; }
.box { display: inline-block; width: 12px; height: 12px; border: 1.5px solid #1f2933; margin-right: 10px; vertical-align: middle; }
li.required .label { font-weight: bold; }
li.checked .box { background: #2f855a; border-color: #2f855a; }
li.checked .label { text-decoration: line-through; color: #52606d; }
@media print { body { margin: 0; } header, section h2, li.checked .box { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }
`

const printScript = `window.onload = function () { window.print(); };`

// Render writes the HTML document to w
func (r *Renderer) Render(w io.Writer, cl *checklist.Checklist) error {
	doc := r.Document(cl)
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	_, err := doc.WriteTo(w)
	return err
}

// Document builds the element tree for the checklist
func (r *Renderer) Document(cl *checklist.Checklist) *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true
	doc.WriteSettings.CanonicalText = true

	root := doc.CreateElement("html")
	root.CreateAttr("lang", "en")

	head := root.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText(r.opts.Title)
	head.CreateElement("style").SetText(stylesheet + PaletteCSS(r.opts.Palette))

	body := root.CreateElement("body")

	header := body.CreateElement("header")
	header.CreateElement("h1").SetText(r.opts.Title)

	info := body.CreateElement("div")
	info.CreateAttr("class", "info")
	info.CreateElement("p").SetText("Disciplines: " + strings.Join(cl.DisciplineLabels(), ", "))
	if extras := cl.ExtraLabels(); len(extras) > 0 {
		info.CreateElement("p").SetText("Extras: " + strings.Join(extras, ", "))
	}
	if !cl.GeneratedAt.IsZero() {
		info.CreateElement("p").SetText("Date: " + cl.GeneratedAt.Format("2 January 2006"))
	}

	for _, section := range cl.Sections {
		el := body.CreateElement("section")
		el.CreateAttr("class", fmt.Sprintf("palette-%d", section.Index%len(r.opts.Palette)))
		el.CreateElement("h2").SetText(section.Title)

		list := el.CreateElement("ul")
		for _, entry := range section.Entries {
			li := list.CreateElement("li")
			li.CreateAttr("class", itemClass(entry))
			li.CreateAttr("data-item-id", entry.ID)

			box := li.CreateElement("span")
			box.CreateAttr("class", "box")

			label := li.CreateElement("span")
			label.CreateAttr("class", "label")
			label.SetText(entry.Name)
		}
	}

	if r.opts.AutoPrint {
		body.CreateElement("script").SetText(printScript)
	}

	doc.Indent(2)
	return doc
}

func itemClass(e checklist.Entry) string {
	classes := []string{"item"}
	if e.Required {
		classes = append(classes, "required")
	}
	if e.Checked {
		classes = append(classes, CheckedClass)
	}
	return strings.Join(classes, " ")
}
