package output

import (
	"context"

	"sitelang/internal/domain/entities"
)

// CatalogRepository reads the page mapping and navigation from storage.
type CatalogRepository interface {
	Load(ctx context.Context) (*entities.Catalog, error)
}

// CatalogWriter is implemented by repositories that can be seeded.
type CatalogWriter interface {
	Save(ctx context.Context, catalog *entities.Catalog) error
}

// CatalogSource hands out the catalog currently in effect. Callers must not
// keep the returned value across requests.
type CatalogSource interface {
	Current() *entities.Catalog
}
