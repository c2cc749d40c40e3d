// Package render turns a checklist into its output formats. Every renderer
// consumes the same *checklist.Checklist so the formats of one export agree
// on sections, items and checked state.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/render/email"
	"github.com/arthur-debert/packlist/pkg/render/html"
	"github.com/arthur-debert/packlist/pkg/render/json"
	"github.com/arthur-debert/packlist/pkg/render/pdf"
	"github.com/arthur-debert/packlist/pkg/render/terminal"
	"github.com/arthur-debert/packlist/pkg/render/text"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer writes a checklist in one format
type Renderer interface {
	Render(w io.Writer, cl *checklist.Checklist) error
}

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text output from the destination
	FormatAuto Format = iota
	// FormatText is the plain text document
	FormatText
	// FormatPDF is the paginated, colour-coded PDF
	FormatPDF
	// FormatHTML is the printable HTML page
	FormatHTML
	// FormatEmail is a mailto: URI carrying the text document
	FormatEmail
	// FormatJSON is machine-readable output
	FormatJSON
	// FormatTerminal is styled terminal output
	FormatTerminal
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatText:
		return "text"
	case FormatPDF:
		return "pdf"
	case FormatHTML:
		return "html"
	case FormatEmail:
		return "email"
	case FormatJSON:
		return "json"
	case FormatTerminal:
		return "term"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for downloadable formats
func (f Format) Extension() string {
	switch f {
	case FormatText, FormatTerminal:
		return ".txt"
	case FormatPDF:
		return ".pdf"
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ""
	}
}

// MIME returns the content type of the rendered output
func (f Format) MIME() string {
	switch f {
	case FormatText, FormatTerminal, FormatEmail:
		return "text/plain; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "text", "txt", "plain":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	case "html", "print":
		return FormatHTML, nil
	case "email", "mail", "mailto":
		return FormatEmail, nil
	case "json":
		return FormatJSON, nil
	case "term", "terminal":
		return FormatTerminal, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrUnknownFormat, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat chooses terminal output for colour-capable terminals and
// plain text otherwise
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// Options carries the per-format renderer settings
type Options struct {
	Text     text.Options
	PDF      pdf.Options
	HTML     html.Options
	Email    email.Options
	Terminal terminal.Options
	// JSONIndent is the indent used for JSON output
	JSONIndent string
}

// DefaultOptions returns the settings used when no configuration is loaded
func DefaultOptions() Options {
	return Options{
		PDF:        pdf.DefaultOptions(),
		HTML:       html.Options{AutoPrint: true},
		JSONIndent: "  ",
	}
}

// New creates the renderer for format. FormatAuto resolves against output
// when it is a file, and to plain text otherwise.
func New(format Format, opts Options, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return New(DetectFormat(file), opts, output)
		}
		return New(FormatText, opts, output)
	case FormatText:
		return text.New(opts.Text), nil
	case FormatPDF:
		return pdf.New(opts.PDF), nil
	case FormatHTML:
		return html.New(opts.HTML), nil
	case FormatEmail:
		if opts.Email.Text == (text.Options{}) {
			opts.Email.Text = opts.Text
		}
		return email.New(opts.Email), nil
	case FormatJSON:
		return json.New(opts.JSONIndent), nil
	case FormatTerminal:
		return terminal.New(opts.Terminal), nil
	default:
		return nil, errors.Newf(errors.ErrUnknownFormat, "unknown format: %v", format)
	}
}
