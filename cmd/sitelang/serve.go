package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sitelang/internal/adapters/web"
	"sitelang/internal/infrastructure/i18n"
	"sitelang/internal/infrastructure/mapping"
)

var watchCatalog bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site with the injected header and the language switch",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&watchCatalog, "watch", true, "reload MAPPING_FILE when it changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	translator := i18n.NewTranslator(cfg.PrimaryLang, logger)
	handler := web.NewHandler(a.resolver, a.catalog, translator, os.DirFS(cfg.SiteRoot), logger)
	server := web.NewServer(cfg.HTTPAddr, handler, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Run(ctx) })
	if file, ok := a.repo.(*mapping.FileRepository); ok && watchCatalog {
		watcher := mapping.NewWatcher(file.Path(), a.catalog, logger)
		g.Go(func() error { return watcher.Run(ctx) })
	}

	logger.Info("✅ Site prêt",
		zap.String("root", cfg.SiteRoot),
		zap.String("mapping_source", cfg.MappingSource),
		zap.Int("mapping_entries", a.catalog.Current().Mapping.Len()),
	)
	return g.Wait()
}
