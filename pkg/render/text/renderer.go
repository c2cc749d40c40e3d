// Package text renders a checklist as a plain text document.
// The same output is used for the text download and the email body.
package text

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/packlist/pkg/checklist"
)

// Glyphs prefixing each item line
const (
	CheckedGlyph   = "☑"
	UncheckedGlyph = "☐"
)

// DefaultHeader is used when Options.Header is empty
const DefaultHeader = "COMPETITION PACKING CHECKLIST"

// DateLayout formats the generation date line
const DateLayout = "2 January 2006"

// Options configure the text renderer
type Options struct {
	Header string
}

// Renderer writes plain text checklists
type Renderer struct {
	opts Options
}

// New creates a new text renderer
func New(opts Options) *Renderer {
	if opts.Header == "" {
		opts.Header = DefaultHeader
	}
	return &Renderer{opts: opts}
}

// Render writes the checklist to w
func (r *Renderer) Render(w io.Writer, cl *checklist.Checklist) error {
	_, err := io.WriteString(w, r.String(cl))
	return err
}

// String returns the checklist as text
func (r *Renderer) String(cl *checklist.Checklist) string {
	var b bytes.Buffer

	b.WriteString(r.opts.Header + "\n")
	b.WriteString(strings.Repeat("=", utf8.RuneCountInString(r.opts.Header)) + "\n\n")

	fmt.Fprintf(&b, "Disciplines: %s\n", strings.Join(cl.DisciplineLabels(), ", "))
	if extras := cl.ExtraLabels(); len(extras) > 0 {
		fmt.Fprintf(&b, "Extras: %s\n", strings.Join(extras, ", "))
	}
	if !cl.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "Generated: %s\n", cl.GeneratedAt.Format(DateLayout))
	}

	for _, section := range cl.Sections {
		title := strings.ToUpper(section.Title)
		b.WriteString("\n" + title + "\n")
		b.WriteString(strings.Repeat("-", utf8.RuneCountInString(title)) + "\n")
		for _, entry := range section.Entries {
			b.WriteString(Glyph(entry.Checked) + " " + entry.Name + "\n")
		}
	}

	return b.String()
}

// Glyph returns the checkbox glyph for a checked state
func Glyph(checked bool) string {
	if checked {
		return CheckedGlyph
	}
	return UncheckedGlyph
}
