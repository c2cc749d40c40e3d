// Package styles holds the named lipgloss styles shared by the terminal
// renderer, the TUI and the CLI. Styles use adaptive colours so they read
// on light and dark terminals, and are loaded from an embedded YAML file.
package styles

import (
	_ "embed"

	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultRegistry *Registry

func init() {
	reg, err := Load(embeddedStyles)
	if err != nil {
		reg = &Registry{colors: map[string]lipgloss.AdaptiveColor{}, styles: map[string]lipgloss.Style{}}
	}
	defaultRegistry = reg
}

// Default returns the registry built from the embedded styles
func Default() *Registry {
	return defaultRegistry
}

// Load builds a registry from YAML data
func Load(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles data")
	}

	reg := &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, def := range config.Colors {
		reg.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		if err := reg.checkColors(name, def); err != nil {
			return nil, err
		}
		reg.styles[name] = reg.build(def)
	}
	return reg, nil
}

func (r *Registry) checkColors(name string, def StyleDef) error {
	for _, c := range []string{def.Foreground, def.Background} {
		if c == "" {
			continue
		}
		if _, ok := r.colors[c]; !ok {
			return errors.Newf(errors.ErrConfigInvalid, "style %s references unknown colour %s", name, c).
				WithDetail("style", name)
		}
	}
	return nil
}

func (r *Registry) build(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		style = style.Foreground(r.colors[def.Foreground])
	}
	if def.Background != "" {
		style = style.Background(r.colors[def.Background])
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// Get returns the named style, or an empty style when it is not defined
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether the named style is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Color returns the named adaptive colour
func (r *Registry) Color(name string) lipgloss.AdaptiveColor {
	return r.colors[name]
}

// Get returns a style from the default registry
func Get(name string) lipgloss.Style {
	return defaultRegistry.Get(name)
}

// Render applies the named style from the default registry
func Render(name string, text string) string {
	return defaultRegistry.Get(name).Render(text)
}
