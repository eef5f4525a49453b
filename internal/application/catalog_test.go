package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelang/internal/application"
	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
)

type stubRepo struct {
	catalog *entities.Catalog
	err     error
	calls   int
}

func (r *stubRepo) Load(context.Context) (*entities.Catalog, error) {
	r.calls++
	return r.catalog, r.err
}

func TestCatalogServiceReload(t *testing.T) {
	ctx := context.Background()
	first := &entities.Catalog{Mapping: testMapping()}
	repo := &stubRepo{catalog: first}
	svc := application.NewCatalogService(repo)

	assert.Nil(t, svc.Current())
	require.NoError(t, svc.Reload(ctx))
	assert.Same(t, first, svc.Current())

	repo.catalog, repo.err = nil, errors.New("disk on fire")
	err := svc.Reload(ctx)
	require.Error(t, err)
	assert.Same(t, first, svc.Current(), "failed reload keeps the previous catalog")

	repo.err = nil
	err = svc.Reload(ctx)
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Same(t, first, svc.Current())
	assert.Equal(t, 3, repo.calls)
}

func TestCheckConsistency(t *testing.T) {
	m := entities.NewPageMapping()
	m.Pair("index", "index")
	m.Pair("carte", "map")
	// forgotten in the English table
	m.Set(entities.Primary, "annonceurs", "advertisers")
	// points back somewhere else
	m.Set(entities.Secondary, "map", "plan")

	c := &entities.Catalog{
		Mapping: m,
		Navigation: []entities.NavItem{
			{Key: "home", Slug: "index"},
			{Key: "blog", Slug: "blogue"},
		},
	}

	issues := application.CheckConsistency(c)
	assert.Equal(t, []entities.ConsistencyIssue{
		{Kind: entities.IssueMissingReverse, Language: entities.Primary, Slug: "annonceurs", Target: "advertisers"},
		{Kind: entities.IssueMismatch, Language: entities.Primary, Slug: "carte", Target: "map", Actual: "plan"},
		{Kind: entities.IssueMissingReverse, Language: entities.Secondary, Slug: "map", Target: "plan"},
		{Kind: entities.IssueUnmappedNavigation, Language: entities.Primary, Slug: "blogue"},
	}, issues)
}

func TestCheckConsistencyClean(t *testing.T) {
	svc := application.NewCatalogService(&stubRepo{catalog: &entities.Catalog{Mapping: testMapping()}})
	assert.Nil(t, svc.Check())

	require.NoError(t, svc.Reload(context.Background()))
	assert.Empty(t, svc.Check())
}
