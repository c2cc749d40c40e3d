package catalog

import (
	"bytes"
	_ "embed"

	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

//go:embed embedded/catalog.toml
var defaultCatalog []byte

// fileCatalog mirrors the TOML layout of a catalog file
type fileCatalog struct {
	Version     string        `toml:"version"`
	Disciplines []fileTag     `toml:"disciplines"`
	Extras      []fileTag     `toml:"extras"`
	Sections    []fileSection `toml:"sections"`
}

type fileTag struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

type fileSection struct {
	Title string     `toml:"title"`
	Items []fileItem `toml:"items"`
}

type fileItem struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Required bool     `toml:"required"`
	When     []string `toml:"when"`
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// DefaultContent returns the raw TOML of the embedded catalog
func DefaultContent() string {
	return string(defaultCatalog)
}

// Parse decodes and validates a TOML catalog
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogLoad, "failed to parse catalog")
	}

	disciplines := make([]Tag, 0, len(fc.Disciplines))
	for _, t := range fc.Disciplines {
		disciplines = append(disciplines, Tag(t))
	}
	extras := make([]Tag, 0, len(fc.Extras))
	for _, t := range fc.Extras {
		extras = append(extras, Tag(t))
	}

	sections := make([]Section, 0, len(fc.Sections))
	for _, fs := range fc.Sections {
		section := Section{Title: fs.Title, Items: make([]Item, 0, len(fs.Items))}
		for _, fi := range fs.Items {
			section.Items = append(section.Items, Item{
				ID:       fi.ID,
				Name:     fi.Name,
				Required: fi.Required,
				Rule:     AnyOf(fi.When...),
			})
		}
		sections = append(sections, section)
	}

	return New(fc.Version, disciplines, extras, sections)
}

// Load reads a catalog file from the given filesystem
func Load(fs afero.Fs, path string) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to read catalog %s", path)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("version", cat.Version).
		Int("sections", len(cat.Sections)).
		Int("items", cat.ItemCount()).
		Msg("Loaded catalog")

	return cat, nil
}
