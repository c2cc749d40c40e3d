package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/packlist/pkg/errors"
)

// Config is the complete packlist configuration
type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Export  ExportConfig  `koanf:"export"`
	Email   EmailConfig   `koanf:"email"`
	Text    TextConfig    `koanf:"text"`
	PDF     PDFConfig     `koanf:"pdf"`
	Server  ServerConfig  `koanf:"server"`
}

// CatalogConfig selects the catalog source
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// ExportConfig controls where exported files are written
type ExportConfig struct {
	Dir          string `koanf:"dir"`
	TextFilename string `koanf:"text_filename"`
	PDFFilename  string `koanf:"pdf_filename"`
	HTMLFilename string `koanf:"html_filename"`
}

// EmailConfig fills the mailto: URI
type EmailConfig struct {
	To      string `koanf:"to"`
	Subject string `koanf:"subject"`
}

// TextConfig controls the plain text document
type TextConfig struct {
	Header string `koanf:"header"`
}

// PDFConfig controls the PDF layout
type PDFConfig struct {
	Title        string   `koanf:"title"`
	PageSize     string   `koanf:"page_size"`
	Margin       float64  `koanf:"margin"`
	ContentWidth float64  `koanf:"content_width"`
	Compress     bool     `koanf:"compress"`
	Logo         string   `koanf:"logo"`
	Palette      []string `koanf:"palette"`
}

// ServerConfig controls the web front-end
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	WatchCatalog    bool          `koanf:"watch_catalog"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Validate checks settings that would otherwise fail late during export
func (c *Config) Validate() error {
	if len(c.PDF.Palette) == 0 {
		return errors.New(errors.ErrConfigInvalid, "pdf.palette must contain at least one colour")
	}
	for _, colour := range c.PDF.Palette {
		if !isHexColour(colour) {
			return errors.Newf(errors.ErrConfigInvalid, "pdf.palette has invalid colour %q", colour).
				WithDetail("key", "pdf.palette")
		}
	}
	if c.PDF.Margin <= 0 {
		return errors.Newf(errors.ErrConfigInvalid, "pdf.margin must be positive, got %v", c.PDF.Margin).
			WithDetail("key", "pdf.margin")
	}
	if c.PDF.ContentWidth < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "pdf.content_width must not be negative, got %v", c.PDF.ContentWidth).
			WithDetail("key", "pdf.content_width")
	}
	switch strings.ToLower(c.PDF.PageSize) {
	case "a4", "letter":
	default:
		return errors.Newf(errors.ErrConfigInvalid, "pdf.page_size must be A4 or Letter, got %q", c.PDF.PageSize).
			WithDetail("key", "pdf.page_size")
	}
	for key, name := range map[string]string{
		"export.text_filename": c.Export.TextFilename,
		"export.pdf_filename":  c.Export.PDFFilename,
		"export.html_filename": c.Export.HTMLFilename,
	} {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return errors.Newf(errors.ErrConfigInvalid, "%s must be a plain file name, got %q", key, name).
				WithDetail("key", key)
		}
	}
	return nil
}

func isHexColour(s string) bool {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
