package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sitelang/internal/infrastructure/database"
	"sitelang/internal/infrastructure/mapping"
	"sitelang/internal/ports/output"
)

var (
	seedFrom string
	seedTo   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the page catalog into PostgreSQL or a TOML file",
	Long: `seed reads a catalog (the embedded one by default, or --from <file>)
and writes it to PostgreSQL (--to postgres) or to a TOML file (--to <file>).`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFrom, "from", "", "TOML catalog to read (default: embedded catalog)")
	seedCmd.Flags().StringVar(&seedTo, "to", "postgres", `"postgres" or a TOML file path`)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var src output.CatalogRepository = mapping.NewEmbeddedRepository()
	if seedFrom != "" {
		src = mapping.NewFileRepository(seedFrom)
	}
	catalog, err := src.Load(ctx)
	if err != nil {
		return err
	}

	var dst output.CatalogWriter
	if seedTo == "postgres" {
		if err := cfg.ValidateDatabase(); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return fmt.Errorf("connexion à la base de données: %w", err)
		}
		defer pool.Close()
		dst = database.NewCatalogRepository(pool)
	} else {
		dst = mapping.NewFileRepository(seedTo)
	}

	if err := dst.Save(ctx, catalog); err != nil {
		return err
	}
	logger.Info("🌱 Table de correspondance copiée",
		zap.String("to", seedTo),
		zap.Int("entries", catalog.Mapping.Len()),
		zap.Int("navigation", len(catalog.Navigation)),
	)
	return nil
}
