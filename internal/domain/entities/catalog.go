package entities

// NavItem is one entry of the header navigation. Slug is the primary-language
// slug; the secondary slug comes from the page mapping.
type NavItem struct {
	Key  string
	Slug string
}

// Catalog is the single source of truth shared by the resolver, the header
// and the chat command.
type Catalog struct {
	Mapping    PageMapping
	Navigation []NavItem
}

func NewCatalog() *Catalog {
	return &Catalog{Mapping: NewPageMapping()}
}

// NavSlug returns the slug of item in language l, falling back to the home
// slug when the secondary table has no entry.
func (c *Catalog) NavSlug(item NavItem, l Language, home string) string {
	if l == Primary {
		return item.Slug
	}
	if target, ok := c.Mapping.Lookup(Primary, item.Slug); ok {
		return target
	}
	if key, ok := c.Mapping.ReverseLookup(Secondary, item.Slug); ok {
		return key
	}
	return home
}
