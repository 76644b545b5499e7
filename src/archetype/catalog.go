// Package archetype holds the persona catalog and matches score mappings
// against it.
package archetype

import (
	"embed"
	"strings"

	"traitgen/src/errors"
	"traitgen/src/values"

	"github.com/BurntSushi/toml"
)

//go:embed data/archetypes.toml
var embeddedCatalog embed.FS

const catalogPath = "data/archetypes.toml"

// catalogFile mirrors the TOML layout of the embedded catalog.
type catalogFile struct {
	Categories []CategoryInfo   `toml:"categories"`
	Archetypes []archetypeEntry `toml:"archetypes"`
}

type archetypeEntry struct {
	Name             string            `toml:"name"`
	Category         string            `toml:"category"`
	Description      string            `toml:"description"`
	ImagePrompt      string            `toml:"image_prompt"`
	PrimaryValues    []string          `toml:"primary_values"`
	SecondaryPattern map[string]string `toml:"secondary_pattern"`
}

// Catalog is an immutable, validated set of archetypes.
type Catalog struct {
	categories []CategoryInfo
	archetypes []Archetype
}

// defaultCatalog is decoded once at init. A broken embedded catalog is an
// authoring defect, so it panics rather than surfacing at match time.
var defaultCatalog = mustLoadEmbedded()

func mustLoadEmbedded() *Catalog {
	data, err := embeddedCatalog.ReadFile(catalogPath)
	if err != nil {
		panic(errors.Wrap(err, "failed to read embedded archetype catalog"))
	}
	c, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// ParseCatalog decodes and validates a TOML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cf catalogFile
	if _, err := toml.Decode(string(data), &cf); err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrInvalidCatalog), "failed to parse archetype catalog")
	}

	c := &Catalog{categories: cf.Categories}
	known := make(map[Category]bool, len(cf.Categories))
	for _, ci := range cf.Categories {
		if ci.Value == "" {
			return nil, errors.Wrap(errors.ErrInvalidCatalog, "category with empty value")
		}
		known[ci.Value] = true
	}

	for _, e := range cf.Archetypes {
		a, err := e.toArchetype(known)
		if err != nil {
			return nil, err
		}
		c.archetypes = append(c.archetypes, a)
	}

	for _, ci := range cf.Categories {
		if len(c.InCategory(ci.Value)) == 0 {
			return nil, errors.Wrapf(errors.Mark(errors.ErrEmptyCategory, errors.ErrInvalidCatalog),
				"category %q", ci.Value)
		}
	}

	return c, nil
}

func (e archetypeEntry) toArchetype(known map[Category]bool) (Archetype, error) {
	cat := Category(strings.TrimSpace(e.Category))
	if !known[cat] {
		return Archetype{}, errors.NewCatalogError(e.Name, "category",
			errors.Wrapf(errors.ErrUnknownCategory, "category %q", e.Category))
	}

	if len(e.PrimaryValues) == 0 {
		return Archetype{}, errors.NewCatalogError(e.Name, "primary_values",
			errors.New("no primary values"))
	}
	primary := make([]string, len(e.PrimaryValues))
	for i, code := range e.PrimaryValues {
		if _, err := values.ValueByCode(code); err != nil {
			return Archetype{}, errors.NewCatalogError(e.Name, "primary_values", err)
		}
		primary[i] = code
	}

	var pattern map[values.Dimension]Level
	if len(e.SecondaryPattern) > 0 {
		pattern = make(map[values.Dimension]Level, len(e.SecondaryPattern))
		for dim, level := range e.SecondaryPattern {
			d, err := values.ParseDimension(dim)
			if err != nil {
				return Archetype{}, errors.NewCatalogError(e.Name, "secondary_pattern", err)
			}
			switch Level(level) {
			case High, Low:
				pattern[d] = Level(level)
			default:
				return Archetype{}, errors.NewCatalogError(e.Name, "secondary_pattern",
					errors.Newf("dimension %s: level %q is neither high nor low", dim, level))
			}
		}
	}

	return Archetype{
		Name:             e.Name,
		Description:      e.Description,
		ImagePrompt:      e.ImagePrompt,
		Category:         cat,
		PrimaryValues:    primary,
		SecondaryPattern: pattern,
	}, nil
}

// All returns every archetype in declaration order.
func (c *Catalog) All() []Archetype {
	out := make([]Archetype, len(c.archetypes))
	for i, a := range c.archetypes {
		out[i] = a.clone()
	}
	return out
}

// Categories returns category metadata in declaration order.
func (c *Catalog) Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(c.categories))
	copy(out, c.categories)
	return out
}

// ParseCategory validates a category name. Matching is case-insensitive.
func (c *Catalog) ParseCategory(name string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, ci := range c.categories {
		if ci.Value == normalized {
			return ci.Value, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownCategory, "category %q", name)
}

// Info returns the metadata for cat.
func (c *Catalog) Info(cat Category) (CategoryInfo, error) {
	for _, ci := range c.categories {
		if ci.Value == cat {
			return ci, nil
		}
	}
	return CategoryInfo{}, errors.Wrapf(errors.ErrUnknownCategory, "category %q", cat)
}

// InCategory returns the archetypes of cat in declaration order.
func (c *Catalog) InCategory(cat Category) []Archetype {
	var out []Archetype
	for _, a := range c.archetypes {
		if a.Category == cat {
			out = append(out, a.clone())
		}
	}
	return out
}

// Categories returns the category metadata of the embedded catalog.
func Categories() []CategoryInfo {
	return defaultCatalog.Categories()
}

// ParseCategory validates name against the embedded catalog.
func ParseCategory(name string) (Category, error) {
	return defaultCatalog.ParseCategory(name)
}

// InCategory lists the embedded archetypes of cat.
func InCategory(cat Category) []Archetype {
	return defaultCatalog.InCategory(cat)
}

// All lists the embedded catalog.
func All() []Archetype {
	return defaultCatalog.All()
}
