package mapping

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelang/internal/application"
	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := NewEmbeddedRepository().Load(context.Background())
	require.NoError(t, err)

	target, ok := c.Mapping.Lookup(entities.Primary, "reseau-publicitaire")
	require.True(t, ok)
	assert.Equal(t, "advertising-network", target)
	assert.NotEmpty(t, c.Navigation)
	assert.Equal(t, entities.NavItem{Key: "home", Slug: "index"}, c.Navigation[0])

	assert.Empty(t, application.CheckConsistency(c), "shipped catalog must be symmetric")
}

func TestDecodeRejects(t *testing.T) {
	tests := map[string]string{
		"unknown table":  "[mapping.tertiary]\na = \"b\"\n",
		"blank target":   "[mapping.primary]\na = \" \"\n",
		"unknown field":  "[mapping.primary]\na = \"b\"\n[extra]\nx = 1\n",
		"navigation key": "[mapping.primary]\na = \"b\"\n[[navigation]]\nslug = \"index\"\n",
		"empty":          "",
		"not toml":       "[mapping.primary\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(input))
			require.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestDecodeUnknownLanguageTable(t *testing.T) {
	_, err := Decode([]byte("[mapping.tertiary]\na = \"b\"\n"))
	require.ErrorIs(t, err, domain.ErrUnknownLanguage)
	assert.Equal(t, "unknown_language", domain.Code(err))
}

func TestFileRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	want := entities.NewCatalog()
	want.Mapping.Pair("a-propos", "about")
	want.Mapping.Set(entities.Secondary, "pricing", "tarifs")
	want.Navigation = []entities.NavItem{{Key: "about", Slug: "a-propos"}}

	repo := NewFileRepository(filepath.Join(t.TempDir(), "pages.toml"))
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileRepositoryMissingFile(t *testing.T) {
	_, err := NewFileRepository(filepath.Join(t.TempDir(), "absent.toml")).Load(context.Background())
	require.Error(t, err)
}
