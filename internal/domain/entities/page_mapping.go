package entities

import "sort"

// PageMapping translates a bare slug in one language to its counterpart in the
// other. Both directions are kept as separate tables; nothing forces them to
// agree.
type PageMapping map[Language]map[string]string

func NewPageMapping() PageMapping {
	return PageMapping{
		Primary:   map[string]string{},
		Secondary: map[string]string{},
	}
}

// Set records that slug in language from is published as target in from.Other().
func (m PageMapping) Set(from Language, slug, target string) {
	if m[from] == nil {
		m[from] = map[string]string{}
	}
	m[from][slug] = target
}

// Pair records both directions at once.
func (m PageMapping) Pair(primarySlug, secondarySlug string) {
	m.Set(Primary, primarySlug, secondarySlug)
	m.Set(Secondary, secondarySlug, primarySlug)
}

// Lookup is the direct lookup m[l][slug].
func (m PageMapping) Lookup(l Language, slug string) (string, bool) {
	target, ok := m[l][slug]
	return target, ok
}

// ReverseLookup searches the table of language l for a key whose value is
// slug. When several keys match, the smallest one wins.
func (m PageMapping) ReverseLookup(l Language, slug string) (string, bool) {
	found := ""
	ok := false
	for key, value := range m[l] {
		if value != slug {
			continue
		}
		if !ok || key < found {
			found = key
			ok = true
		}
	}
	return found, ok
}

// Slugs returns the sorted keys of the table of l.
func (m PageMapping) Slugs(l Language) []string {
	out := make([]string, 0, len(m[l]))
	for slug := range m[l] {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Len counts entries over both tables.
func (m PageMapping) Len() int {
	return len(m[Primary]) + len(m[Secondary])
}
