package entities

import "strings"

// Convention is the URL layout a page is published under.
type Convention int

const (
	// Nested pages live under /<prefix>/<lang>/<slug><ext>.
	Nested Convention = iota
	// Flat pages live under /<lang>/<slug>.
	Flat
)

func (c Convention) String() string {
	if c == Flat {
		return "flat"
	}
	return "nested"
}

// ParseConvention parses "nested" or "flat".
func ParseConvention(s string) (Convention, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nested":
		return Nested, true
	case "flat":
		return Flat, true
	}
	return Nested, false
}

// Site holds the URL conventions of a bilingual site.
type Site struct {
	PrimaryCode       string
	SecondaryCode     string
	Prefix            string
	Extension         string
	HomeSlug          string
	DefaultConvention Convention
}

// DefaultSite is the French/English layout with pages under /pages/<lang>/.
func DefaultSite() Site {
	return Site{
		PrimaryCode:       "fr",
		SecondaryCode:     "en",
		Prefix:            "pages",
		Extension:         ".html",
		HomeSlug:          "index",
		DefaultConvention: Nested,
	}
}

// Code returns the language code used in paths and lang attributes.
func (s Site) Code(l Language) string {
	if l == Secondary {
		return s.SecondaryCode
	}
	return s.PrimaryCode
}

// LanguageForCode matches a path segment against both language codes.
func (s Site) LanguageForCode(code string) (Language, bool) {
	switch {
	case strings.EqualFold(code, s.PrimaryCode):
		return Primary, true
	case strings.EqualFold(code, s.SecondaryCode):
		return Secondary, true
	}
	return Primary, false
}

// IsPrefix reports whether segment is the nested-layout path prefix.
func (s Site) IsPrefix(segment string) bool {
	return s.Prefix != "" && strings.EqualFold(segment, s.Prefix)
}

// BareSlug strips the page extension so slugs compare equal across layouts.
func (s Site) BareSlug(slug string) string {
	if s.Extension == "" {
		return slug
	}
	return strings.TrimSuffix(slug, s.Extension)
}

// Path builds the URL of slug in language l under convention c.
func (s Site) Path(c Convention, l Language, slug string) string {
	slug = s.BareSlug(slug)
	if slug == "" {
		slug = s.HomeSlug
	}
	code := s.Code(l)

	if c == Flat {
		if slug == s.HomeSlug {
			return "/" + code + "/"
		}
		return "/" + code + "/" + slug
	}

	var b strings.Builder
	if s.Prefix != "" {
		b.WriteString("/")
		b.WriteString(s.Prefix)
	}
	b.WriteString("/")
	b.WriteString(code)
	b.WriteString("/")
	b.WriteString(slug)
	b.WriteString(s.Extension)
	return b.String()
}

// HomePath is the home page of l under the default convention.
func (s Site) HomePath(l Language) string {
	return s.Path(s.DefaultConvention, l, s.HomeSlug)
}
