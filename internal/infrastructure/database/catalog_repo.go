package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sitelang/internal/domain/entities"
	"sitelang/internal/ports/output"
)

var (
	_ output.CatalogRepository = (*CatalogRepository)(nil)
	_ output.CatalogWriter     = (*CatalogRepository)(nil)
)

const (
	selectMappings = `SELECT source_language, source_slug, target_slug
		FROM page_mappings ORDER BY source_language, source_slug`
	selectNavigation = `SELECT position, message_key, slug
		FROM navigation_items ORDER BY position`
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) Load(ctx context.Context) (*entities.Catalog, error) {
	rows, err := r.pool.Query(ctx, selectMappings)
	if err != nil {
		return nil, fmt.Errorf("select page mappings: %w", err)
	}
	mappings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (mappingRow, error) {
		var m mappingRow
		err := row.Scan(&m.SourceLanguage, &m.SourceSlug, &m.TargetSlug)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan page mappings: %w", err)
	}

	rows, err = r.pool.Query(ctx, selectNavigation)
	if err != nil {
		return nil, fmt.Errorf("select navigation: %w", err)
	}
	nav, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (navigationRow, error) {
		var n navigationRow
		err := row.Scan(&n.Position, &n.MessageKey, &n.Slug)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan navigation: %w", err)
	}

	return rowsToCatalog(mappings, nav)
}

// Save replaces the stored catalog with c in one transaction.
func (r *CatalogRepository) Save(ctx context.Context, c *entities.Catalog) error {
	mappings, nav := catalogToRows(c)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM navigation_items`); err != nil {
		return fmt.Errorf("clear navigation: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM page_mappings`); err != nil {
		return fmt.Errorf("clear page mappings: %w", err)
	}

	batch := &pgx.Batch{}
	for _, m := range mappings {
		batch.Queue(`INSERT INTO page_mappings (source_language, source_slug, target_slug) VALUES ($1, $2, $3)`,
			m.SourceLanguage, m.SourceSlug, m.TargetSlug)
	}
	for _, n := range nav {
		batch.Queue(`INSERT INTO navigation_items (position, message_key, slug) VALUES ($1, $2, $3)`,
			n.Position, n.MessageKey, n.Slug)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
