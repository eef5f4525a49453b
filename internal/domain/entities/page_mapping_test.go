package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseLookupPicksSmallestKey(t *testing.T) {
	m := NewPageMapping()
	m.Set(Secondary, "plans", "forfaits")
	m.Set(Secondary, "pricing", "forfaits")
	m.Set(Secondary, "offers", "forfaits")

	got, ok := m.ReverseLookup(Secondary, "forfaits")
	assert.True(t, ok)
	assert.Equal(t, "offers", got)

	_, ok = m.ReverseLookup(Primary, "forfaits")
	assert.False(t, ok)
}


func TestCatalogNavSlug(t *testing.T) {
	c := NewCatalog()
	c.Mapping.Pair("carte", "map")
	c.Mapping.Set(Secondary, "pricing", "tarifs")

	assert.Equal(t, "carte", c.NavSlug(NavItem{Key: "map", Slug: "carte"}, Primary, "index"))
	assert.Equal(t, "map", c.NavSlug(NavItem{Key: "map", Slug: "carte"}, Secondary, "index"))
	assert.Equal(t, "pricing", c.NavSlug(NavItem{Key: "pricing", Slug: "tarifs"}, Secondary, "index"))
	assert.Equal(t, "index", c.NavSlug(NavItem{Key: "blog", Slug: "blogue"}, Secondary, "index"))
}
