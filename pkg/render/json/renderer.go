// Package json provides machine-readable checklist output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/packlist/pkg/checklist"
)

// Document is the JSON shape of an exported checklist
type Document struct {
	*checklist.Checklist
	Stats checklist.Stats `json:"stats"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	indent string
}

// New creates a new JSON renderer. An empty indent produces compact output.
func New(indent string) *Renderer {
	return &Renderer{indent: indent}
}

// Render writes the checklist and its stats as JSON
func (r *Renderer) Render(w io.Writer, cl *checklist.Checklist) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", r.indent)
	return encoder.Encode(Document{Checklist: cl, Stats: cl.Stats()})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(w io.Writer, err error) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", r.indent)
	return encoder.Encode(map[string]string{"error": err.Error()})
}
