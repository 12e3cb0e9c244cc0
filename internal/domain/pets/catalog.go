package pets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrInvalidCatalog = errors.New("invalid pet catalog")

// Catalog son los pools fijos de los que se sortea cada Pet.
type Catalog struct {
	ImagePattern string   `yaml:"image_pattern"`
	Names        []string `yaml:"names"`
	Descriptions []string `yaml:"descriptions"`
	Backgrounds  []string `yaml:"backgrounds"`
	Rarities     []string `yaml:"rarities"`
	Traits       []string `yaml:"traits"`
}

// DefaultCatalog devuelve el catálogo embebido.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	switch {
	case !strings.Contains(c.ImagePattern, "%d"):
		return fmt.Errorf("%w: image_pattern must contain %%d", ErrInvalidCatalog)
	case len(c.Names) == 0:
		return fmt.Errorf("%w: names empty", ErrInvalidCatalog)
	case len(c.Descriptions) != len(c.Names):
		return fmt.Errorf("%w: %d names but %d descriptions", ErrInvalidCatalog, len(c.Names), len(c.Descriptions))
	case len(c.Backgrounds) == 0:
		return fmt.Errorf("%w: backgrounds empty", ErrInvalidCatalog)
	case len(c.Rarities) == 0:
		return fmt.Errorf("%w: rarities empty", ErrInvalidCatalog)
	case len(c.Traits) < TraitsPerPet:
		return fmt.Errorf("%w: need at least %d traits", ErrInvalidCatalog, TraitsPerPet)
	}
	return nil
}

// Image arma el path de la imagen i.
func (c Catalog) Image(i int) string {
	return fmt.Sprintf(c.ImagePattern, i)
}
