package application

import (
	"strings"

	"sitelang/internal/domain/entities"
	"sitelang/internal/ports/input"
	"sitelang/internal/ports/output"
)

var _ input.LanguageSwitchUseCase = (*ResolverService)(nil)

// DetectLanguage decides which language a page is in. The lang attribute wins
// over the path; a page that says nothing is in the primary language.
func DetectLanguage(site entities.Site, langAttr, path string) entities.Language {
	if langAttr != "" {
		if site.SecondaryCode != "" && strings.HasPrefix(strings.ToLower(langAttr), strings.ToLower(site.SecondaryCode)) {
			return entities.Secondary
		}
		return entities.Primary
	}

	segs := segments(path)
	if hasSegment(segs, site.SecondaryCode) {
		return entities.Secondary
	}
	if hasSegment(segs, site.PrimaryCode) {
		return entities.Primary
	}
	return entities.Primary
}

// ExtractSlug returns the page identifier of path. Both /<prefix>/<lang>/<slug>
// and /<lang>/<slug> are understood; anything else uses the last segment.
func ExtractSlug(site entities.Site, path string) string {
	segs := segments(path)
	conv := conventionOf(site, segs)

	var slug string
	switch {
	case len(segs) == 0:
		return site.HomeSlug
	case len(segs) >= 2 && site.IsPrefix(segs[0]) && isLanguageSegment(site, segs[1]):
		if len(segs) < 3 {
			return site.HomeSlug
		}
		slug = segs[2]
	case isLanguageSegment(site, segs[0]):
		if len(segs) < 2 {
			return site.HomeSlug
		}
		slug = segs[1]
	default:
		slug = segs[len(segs)-1]
	}

	slug = stripQueryAndFragment(slug)
	if conv == entities.Nested && site.Extension != "" &&
		slug != "" && slug != site.HomeSlug && !strings.HasSuffix(slug, site.Extension) {
		slug += site.Extension
	}
	return slug
}

// ConventionOf reports the URL layout path is written in.
func ConventionOf(site entities.Site, path string) entities.Convention {
	return conventionOf(site, segments(path))
}

// Resolve computes the page equivalent to loc in the other language: direct
// lookup, then reverse lookup, then the home page. It never fails and never
// returns an empty path.
func Resolve(site entities.Site, loc entities.Location, mapping entities.PageMapping) entities.Resolution {
	current := DetectLanguage(site, loc.LangAttr, loc.Path)
	target := current.Other()
	slug := ExtractSlug(site, loc.Path)
	key := site.BareSlug(slug)

	res := entities.Resolution{
		From: entities.ResolvedLocation{Language: current, Slug: slug},
		To:   entities.ResolvedLocation{Language: target, Slug: site.HomeSlug},
	}

	if found, ok := mapping.Lookup(current, key); ok && found != "" {
		res.To.Slug = found
		res.Stage = entities.StageDirect
	} else if found, ok := mapping.ReverseLookup(target, key); ok && found != "" {
		res.To.Slug = found
		res.Stage = entities.StageReverse
	} else {
		res.Stage = entities.StageFallback
	}

	res.Path = site.Path(ConventionOf(site, loc.Path), target, res.To.Slug)
	return res
}

// ResolveEquivalentPath is Resolve reduced to the target path.
func ResolveEquivalentPath(site entities.Site, loc entities.Location, mapping entities.PageMapping) string {
	return Resolve(site, loc, mapping).Path
}

// ResolverService resolves against whatever catalog the source currently
// holds. Nothing is memoized: every call reads the catalog again.
type ResolverService struct {
	site    entities.Site
	catalog output.CatalogSource
}

func NewResolverService(site entities.Site, catalog output.CatalogSource) *ResolverService {
	return &ResolverService{site: site, catalog: catalog}
}

func (s *ResolverService) Site() entities.Site {
	return s.site
}

func (s *ResolverService) Resolve(loc entities.Location) entities.Resolution {
	mapping := entities.NewPageMapping()
	if c := s.catalog.Current(); c != nil && c.Mapping != nil {
		mapping = c.Mapping
	}
	return Resolve(s.site, loc, mapping)
}

func conventionOf(site entities.Site, segs []string) entities.Convention {
	if len(segs) >= 2 && site.IsPrefix(segs[0]) && isLanguageSegment(site, segs[1]) {
		return entities.Nested
	}
	if len(segs) >= 1 && isLanguageSegment(site, segs[0]) {
		return entities.Flat
	}
	return site.DefaultConvention
}

func isLanguageSegment(site entities.Site, segment string) bool {
	_, ok := site.LanguageForCode(segment)
	return ok
}

func segments(path string) []string {
	path = stripQueryAndFragment(path)
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func hasSegment(segs []string, code string) bool {
	if code == "" {
		return false
	}
	for _, s := range segs {
		if strings.EqualFold(s, code) {
			return true
		}
	}
	return false
}

func stripQueryAndFragment(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}
