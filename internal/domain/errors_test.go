package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, "", Code(errors.New("boom")))
	assert.Equal(t, "empty_path", Code(ErrEmptyPath))
	assert.Equal(t, "catalog_unavailable", Code(fmt.Errorf("load: %w", ErrCatalogUnavailable)))
}
