package mapping

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"sitelang/internal/domain/entities"
	"sitelang/internal/ports/output"
)

//go:embed pages.toml
var embeddedCatalog []byte

var (
	_ output.CatalogRepository = (*EmbeddedRepository)(nil)
	_ output.CatalogRepository = (*FileRepository)(nil)
	_ output.CatalogWriter     = (*FileRepository)(nil)
)

// EmbeddedRepository serves the catalog compiled into the binary.
type EmbeddedRepository struct{}

func NewEmbeddedRepository() *EmbeddedRepository {
	return &EmbeddedRepository{}
}

func (r *EmbeddedRepository) Load(_ context.Context) (*entities.Catalog, error) {
	c, err := Decode(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// FileRepository reads the catalog from a TOML file on disk.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(_ context.Context) (*entities.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", r.path, err)
	}
	return c, nil
}

func (r *FileRepository) Save(_ context.Context, c *entities.Catalog) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", r.path, err)
	}
	return nil
}
