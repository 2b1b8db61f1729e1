package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxe-be/internal/entities"
	"luxe-be/internal/repository"
)

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()
	catalog, err := repository.NewProductCatalog(repository.DefaultProducts())
	require.NoError(t, err)
	return NewCatalogService(catalog)
}

func TestListProducts(t *testing.T) {
	svc := newCatalogService(t)

	assert.Len(t, svc.ListProducts(""), 6)

	rings := svc.ListProducts("rings")
	require.Len(t, rings, 1)
	assert.Equal(t, "rings", rings[0].Category)

	bracelets := svc.ListProducts("bracelets")
	assert.Len(t, bracelets, 2)

	assert.Empty(t, svc.ListProducts("watches"))
}

func TestGetProduct(t *testing.T) {
	svc := newCatalogService(t)

	p, err := svc.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = svc.GetProduct(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCategories(t *testing.T) {
	svc := newCatalogService(t)
	assert.Equal(t, []string{"bracelets", "earrings", "necklaces", "rings"}, svc.Categories())
}

func TestStats(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := newCatalogService(t).(*catalogService)
	svc.now = func() time.Time { return fixed }

	stats := svc.Stats()
	assert.Equal(t, 6, stats.TotalProducts)
	assert.Equal(t, 4, stats.TotalCategories)
	assert.Equal(t, 12494.00, stats.TotalInventoryValue)
	assert.Equal(t, 2082.33, stats.AveragePrice)
	assert.Equal(t, "active", stats.Status)
	assert.Equal(t, fixed, stats.LastUpdated)
}

func TestStats_EmptyCatalog(t *testing.T) {
	catalog, err := repository.NewProductCatalog([]entities.Product{})
	require.NoError(t, err)

	stats := NewCatalogService(catalog).Stats()
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.AveragePrice)
	assert.Empty(t, stats.Categories)
}
