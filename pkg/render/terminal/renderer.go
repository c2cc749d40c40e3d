// Package terminal renders a checklist for an interactive terminal. The
// checklist is expressed as markdown task lists and rendered with glamour
// below a styled summary header.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/arthur-debert/packlist/pkg/ui/styles"
	"github.com/charmbracelet/glamour"
)

// Options configure the terminal renderer
type Options struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path
	// to a custom style. Empty or "auto" detects from the terminal.
	Style string
	// Width wraps output at the given column, 0 keeps glamour's default
	Width int
}

// Renderer provides rich terminal output
type Renderer struct {
	opts Options
}

// New creates a new terminal renderer
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render writes the styled checklist to w
func (r *Renderer) Render(w io.Writer, cl *checklist.Checklist) error {
	header := r.header(cl)
	body := r.body(Markdown(cl))

	_, err := fmt.Fprintf(w, "%s\n%s", header, body)
	return err
}

func (r *Renderer) header(cl *checklist.Checklist) string {
	st := cl.Stats()
	lines := []string{
		styles.Render("Title", "Competition Packing Checklist"),
		styles.Render("Subtitle", "Disciplines: "+strings.Join(cl.DisciplineLabels(), ", ")),
	}
	if extras := cl.ExtraLabels(); len(extras) > 0 {
		lines = append(lines, styles.Render("Subtitle", "Extras: "+strings.Join(extras, ", ")))
	}
	lines = append(lines, styles.Render("Summary",
		fmt.Sprintf("%d items in %d sections, %d packed", st.Items, st.Sections, st.Checked)))
	return strings.Join(lines, "\n")
}

// body renders markdown with glamour, falling back to the raw markdown
func (r *Renderer) body(md string) string {
	var options []glamour.TermRendererOption

	if r.opts.Style != "" && r.opts.Style != "auto" {
		if isStandardStyle(r.opts.Style) {
			options = append(options, glamour.WithStandardStyle(r.opts.Style))
		} else {
			options = append(options, glamour.WithStylePath(r.opts.Style))
		}
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.opts.Width))
	}

	logger := logging.GetLogger("render.terminal")
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("glamour unavailable, using plain markdown")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		logger.Debug().Err(err).Msg("glamour render failed, using plain markdown")
		return md
	}
	return rendered
}

func isStandardStyle(name string) bool {
	switch name {
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		return true
	}
	return false
}

// Markdown expresses the checklist sections as markdown task lists
func Markdown(cl *checklist.Checklist) string {
	var b strings.Builder
	for i, section := range cl.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", section.Title)
		for _, entry := range section.Entries {
			mark := " "
			if entry.Checked {
				mark = "x"
			}
			name := escapeMarkdown(entry.Name)
			if entry.Required {
				name = "**" + name + "**"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, name)
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `[`, `\[`, `]`, `\]`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
