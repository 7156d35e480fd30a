// Package catalog is the typed client for the product and category
// endpoints backing the shop tab.
package catalog

import (
	"context"

	"github.com/spikemate/mobile-core/pkg/models"
)

type httpAPI interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

type Service struct {
	api httpAPI
}

func NewService(api httpAPI) *Service {
	return &Service{api: api}
}

// ListProducts returns the full catalog.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.api.Get(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.api.Get(ctx, "/api/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProductsByCategory filters the catalog by category.
func (s *Service) ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := s.api.Get(ctx, "/api/products/category/"+categoryID, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a product to the catalog (admin).
func (s *Service) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var created models.Product
	if err := s.api.Post(ctx, "/api/products", product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct modifies a catalog entry (admin).
func (s *Service) UpdateProduct(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	var updated models.Product
	if err := s.api.Put(ctx, "/api/products/"+id, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a catalog entry (admin).
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/products/"+id, nil)
}

// ListCategories returns the shop's category tree.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.api.Get(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches one category by id.
func (s *Service) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := s.api.Get(ctx, "/api/categories/"+id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
