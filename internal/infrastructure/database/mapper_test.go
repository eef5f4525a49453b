package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
)

func TestCatalogRowsRoundTrip(t *testing.T) {
	c := entities.NewCatalog()
	c.Mapping.Pair("carte", "map")
	c.Mapping.Set(entities.Secondary, "pricing", "tarifs")
	c.Navigation = []entities.NavItem{{Key: "home", Slug: "index"}, {Key: "map", Slug: "carte"}}

	mappings, nav := catalogToRows(c)
	assert.Equal(t, []mappingRow{
		{SourceLanguage: "primary", SourceSlug: "carte", TargetSlug: "map"},
		{SourceLanguage: "secondary", SourceSlug: "map", TargetSlug: "carte"},
		{SourceLanguage: "secondary", SourceSlug: "pricing", TargetSlug: "tarifs"},
	}, mappings)
	assert.Equal(t, []navigationRow{
		{Position: 0, MessageKey: "home", Slug: "index"},
		{Position: 1, MessageKey: "map", Slug: "carte"},
	}, nav)

	back, err := rowsToCatalog(mappings, nav)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestRowsToCatalogRejectsUnknownLanguage(t *testing.T) {
	_, err := rowsToCatalog([]mappingRow{{SourceLanguage: "fr", SourceSlug: "a", TargetSlug: "b"}}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
	require.ErrorIs(t, err, domain.ErrUnknownLanguage)
	assert.Equal(t, "unknown_language", domain.Code(err))
}

func TestRowsToCatalogRejectsEmptyTable(t *testing.T) {
	nav := []navigationRow{{Position: 0, MessageKey: "home", Slug: "index"}}

	c, err := rowsToCatalog(nil, nav)
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Nil(t, c)
}
