package mapping

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
)

type catalogFile struct {
	Mapping    map[string]map[string]string `toml:"mapping"`
	Navigation []navigationEntry             `toml:"navigation"`
}

type navigationEntry struct {
	Key  string `toml:"key"`
	Slug string `toml:"slug"`
}

// Decode parses a catalog file. Unknown tables under [mapping], blank slugs
// and files without any mapping entry (truncated writes) are rejected.
func Decode(data []byte) (*entities.Catalog, error) {
	var f catalogFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w: %v", domain.ErrInvalidCatalog, err)
	}

	c := entities.NewCatalog()
	for name, table := range f.Mapping {
		l, ok := entities.ParseLanguage(name)
		if !ok {
			return nil, fmt.Errorf("decode catalog: %w: %w: mapping.%s", domain.ErrInvalidCatalog, domain.ErrUnknownLanguage, name)
		}
		for slug, target := range table {
			slug, target = strings.TrimSpace(slug), strings.TrimSpace(target)
			if slug == "" || target == "" {
				return nil, fmt.Errorf("decode catalog: %w: blank slug in mapping.%s", domain.ErrInvalidCatalog, name)
			}
			c.Mapping.Set(l, slug, target)
		}
	}
	if c.Mapping.Len() == 0 {
		return nil, fmt.Errorf("decode catalog: %w: no mapping entries", domain.ErrInvalidCatalog)
	}
	for i, n := range f.Navigation {
		if strings.TrimSpace(n.Key) == "" || strings.TrimSpace(n.Slug) == "" {
			return nil, fmt.Errorf("decode catalog: %w: navigation[%d] needs key and slug", domain.ErrInvalidCatalog, i)
		}
		c.Navigation = append(c.Navigation, entities.NavItem{Key: n.Key, Slug: n.Slug})
	}
	return c, nil
}

// Encode writes c in the format Decode reads.
func Encode(c *entities.Catalog) ([]byte, error) {
	f := catalogFile{Mapping: map[string]map[string]string{}}
	for _, l := range []entities.Language{entities.Primary, entities.Secondary} {
		table := map[string]string{}
		for slug, target := range c.Mapping[l] {
			table[slug] = target
		}
		f.Mapping[l.String()] = table
	}
	for _, n := range c.Navigation {
		f.Navigation = append(f.Navigation, navigationEntry{Key: n.Key, Slug: n.Slug})
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}
