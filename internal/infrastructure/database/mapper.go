package database

import (
	"fmt"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
)

type mappingRow struct {
	SourceLanguage string
	SourceSlug     string
	TargetSlug     string
}

type navigationRow struct {
	Position   int32
	MessageKey string
	Slug       string
}

func rowsToCatalog(mappings []mappingRow, nav []navigationRow) (*entities.Catalog, error) {
	c := entities.NewCatalog()
	for _, r := range mappings {
		l, ok := entities.ParseLanguage(r.SourceLanguage)
		if !ok {
			return nil, fmt.Errorf("page_mappings: %w: %w: source_language %q", domain.ErrInvalidCatalog, domain.ErrUnknownLanguage, r.SourceLanguage)
		}
		c.Mapping.Set(l, r.SourceSlug, r.TargetSlug)
	}
	if c.Mapping.Len() == 0 {
		return nil, fmt.Errorf("page_mappings: %w: no mapping entries", domain.ErrInvalidCatalog)
	}
	for _, r := range nav {
		c.Navigation = append(c.Navigation, entities.NavItem{Key: r.MessageKey, Slug: r.Slug})
	}
	return c, nil
}

func catalogToRows(c *entities.Catalog) ([]mappingRow, []navigationRow) {
	var mappings []mappingRow
	for _, l := range []entities.Language{entities.Primary, entities.Secondary} {
		for _, slug := range c.Mapping.Slugs(l) {
			mappings = append(mappings, mappingRow{
				SourceLanguage: l.String(),
				SourceSlug:     slug,
				TargetSlug:     c.Mapping[l][slug],
			})
		}
	}
	nav := make([]navigationRow, len(c.Navigation))
	for i, item := range c.Navigation {
		nav[i] = navigationRow{Position: int32(i), MessageKey: item.Key, Slug: item.Slug}
	}
	return mappings, nav
}
