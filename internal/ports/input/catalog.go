package input

import (
	"context"

	"sitelang/internal/domain/entities"
)

type CatalogUseCase interface {
	Current() *entities.Catalog
	Reload(ctx context.Context) error
	Check() []entities.ConsistencyIssue
}
