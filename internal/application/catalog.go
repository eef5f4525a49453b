package application

import (
	"context"
	"fmt"
	"sync/atomic"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
	"sitelang/internal/ports/input"
	"sitelang/internal/ports/output"
)

var (
	_ input.CatalogUseCase = (*CatalogService)(nil)
	_ output.CatalogSource = (*CatalogService)(nil)
)

// CatalogService keeps the catalog in effect and swaps it atomically on reload.
type CatalogService struct {
	repo    output.CatalogRepository
	current atomic.Pointer[entities.Catalog]
}

func NewCatalogService(repo output.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Current returns the catalog in effect, nil before the first load.
func (s *CatalogService) Current() *entities.Catalog {
	return s.current.Load()
}

// Reload reads the repository again. On failure the previous catalog stays.
func (s *CatalogService) Reload(ctx context.Context) error {
	c, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if c == nil || c.Mapping == nil {
		return fmt.Errorf("load catalog: %w", domain.ErrInvalidCatalog)
	}
	s.current.Store(c)
	return nil
}

func (s *CatalogService) Check() []entities.ConsistencyIssue {
	c := s.Current()
	if c == nil {
		return nil
	}
	return CheckConsistency(c)
}

// CheckConsistency lists the entries of c whose counterpart is missing or
// points elsewhere. It reports and never repairs: an entry without its
// reverse still resolves, and which side is right is a content decision.
func CheckConsistency(c *entities.Catalog) []entities.ConsistencyIssue {
	var issues []entities.ConsistencyIssue
	for _, l := range []entities.Language{entities.Primary, entities.Secondary} {
		for _, slug := range c.Mapping.Slugs(l) {
			target := c.Mapping[l][slug]
			back, ok := c.Mapping.Lookup(l.Other(), target)
			switch {
			case !ok:
				issues = append(issues, entities.ConsistencyIssue{
					Kind: entities.IssueMissingReverse, Language: l, Slug: slug, Target: target,
				})
			case back != slug:
				issues = append(issues, entities.ConsistencyIssue{
					Kind: entities.IssueMismatch, Language: l, Slug: slug, Target: target, Actual: back,
				})
			}
		}
	}
	for _, item := range c.Navigation {
		if _, ok := c.Mapping.Lookup(entities.Primary, item.Slug); !ok {
			issues = append(issues, entities.ConsistencyIssue{
				Kind: entities.IssueUnmappedNavigation, Language: entities.Primary, Slug: item.Slug,
			})
		}
	}
	return issues
}
