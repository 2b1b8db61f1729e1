package service

import (
	"errors"
	"math"
	"sort"
	"time"

	"luxe-be/internal/entities"
	"luxe-be/internal/models"
	"luxe-be/internal/repository"
)

// CatalogService exposes the read-only product catalog
type CatalogService interface {
	ListProducts(category string) []entities.Product
	GetProduct(id int64) (*entities.Product, error)
	Categories() []string
	Stats() models.StatsResponse
}

type catalogService struct {
	catalog *repository.ProductCatalog
	now     func() time.Time
}

func NewCatalogService(catalog *repository.ProductCatalog) CatalogService {
	return &catalogService{catalog: catalog, now: time.Now}
}

// ListProducts returns every product, or only those in category when it is set
func (s *catalogService) ListProducts(category string) []entities.Product {
	all := s.catalog.All()
	if category == "" {
		return all
	}
	filtered := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *catalogService) GetProduct(id int64) (*entities.Product, error) {
	p, err := s.catalog.FindByID(id)
	if errors.Is(err, repository.ErrProductMissing) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// Categories returns the distinct categories, sorted
func (s *catalogService) Categories() []string {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range s.catalog.All() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

func (s *catalogService) Stats() models.StatsResponse {
	products := s.catalog.All()
	categories := s.Categories()

	var total float64
	for _, p := range products {
		total += p.Price
	}
	var average float64
	if len(products) > 0 {
		average = round2(total / float64(len(products)))
	}

	return models.StatsResponse{
		TotalProducts:       len(products),
		TotalCategories:     len(categories),
		Categories:          categories,
		TotalInventoryValue: round2(total),
		AveragePrice:        average,
		Status:              "active",
		LastUpdated:         s.now().UTC(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
