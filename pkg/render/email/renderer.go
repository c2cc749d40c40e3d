// Package email turns a checklist into a mailto: URI whose body is the text
// rendering of the checklist. No mail is sent; the URI is handed to the
// user's mail client.
package email

import (
	"io"
	"net/url"
	"strings"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/render/text"
)

// DefaultSubject is used when Options.Subject is empty
const DefaultSubject = "My Competition Packing Checklist"

// Options configure the email renderer
type Options struct {
	To      string
	Subject string
	Text    text.Options
}

// Renderer builds mailto: URIs
type Renderer struct {
	opts Options
	text *text.Renderer
}

// New creates a new email renderer
func New(opts Options) *Renderer {
	if opts.Subject == "" {
		opts.Subject = DefaultSubject
	}
	return &Renderer{opts: opts, text: text.New(opts.Text)}
}

// Render writes the mailto: URI to w
func (r *Renderer) Render(w io.Writer, cl *checklist.Checklist) error {
	_, err := io.WriteString(w, r.URI(cl))
	return err
}

// URI returns the mailto: URI for the checklist
func (r *Renderer) URI(cl *checklist.Checklist) string {
	return "mailto:" + EscapeRecipients(r.opts.To) +
		"?subject=" + Escape(r.opts.Subject) +
		"&body=" + Escape(r.text.String(cl))
}

// Escape percent-encodes s for a mailto: header value. Spaces become %20
// since mail clients do not treat '+' as a space.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// EscapeRecipients encodes a comma separated address list for the mailto:
// path. Local part and domain are escaped separately so the '@' stays
// literal, as RFC 6068 requires.
func EscapeRecipients(to string) string {
	var out []string
	for _, addr := range strings.Split(to, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		at := strings.LastIndex(addr, "@")
		if at < 0 {
			out = append(out, Escape(addr))
			continue
		}
		out = append(out, Escape(addr[:at])+"@"+Escape(addr[at+1:]))
	}
	return strings.Join(out, ",")
}
