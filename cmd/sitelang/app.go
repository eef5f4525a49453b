package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"sitelang/internal/application"
	"sitelang/internal/config"
	"sitelang/internal/infrastructure/database"
	"sitelang/internal/infrastructure/mapping"
	"sitelang/internal/ports/output"
)

// app holds the wired use cases shared by the subcommands.
type app struct {
	catalog  *application.CatalogService
	resolver *application.ResolverService
	repo     output.CatalogRepository
	pool     *pgxpool.Pool
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	switch cfg.MappingSource {
	case config.SourceFile:
		a.repo = mapping.NewFileRepository(cfg.MappingFile)
	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("connexion à la base de données: %w", err)
		}
		a.pool = pool
		a.repo = database.NewCatalogRepository(pool)
	default:
		a.repo = mapping.NewEmbeddedRepository()
	}

	a.catalog = application.NewCatalogService(a.repo)
	if err := a.catalog.Reload(ctx); err != nil {
		a.close()
		return nil, err
	}
	a.resolver = application.NewResolverService(cfg.Site(), a.catalog)
	return a, nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
