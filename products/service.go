package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"velour/models"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("product not found")

const defaultListLimit = 50

// Service owns the catalog. Read-mostly: products are created through
// Create or the one-time seed, never updated or deleted here.
type Service struct {
	Products Store
}

func NewService(products Store) *Service {
	return &Service{Products: products}
}

func (s *Service) List(ctx context.Context, category string, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = defaultListLimit
	}
	list, err := s.Products.FindActive(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Product{}
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.Products.FindActiveByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *Service) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		ProductID:     uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Category:      in.Category,
		Subcategory:   in.Subcategory,
		Images:        in.Images,
		Attributes:    in.Attributes,
		StockQuantity: in.StockQuantity,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Attributes == nil {
		product.Attributes = map[string]string{}
	}
	if err := s.Products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Seed bulk-inserts the sample catalog once. A non-empty collection
// makes it a no-op.
func (s *Service) Seed(ctx context.Context) (string, error) {
	count, err := s.Products.Count(ctx)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "Sample data already exists", nil
	}

	for _, in := range sampleProducts {
		if _, err := s.Create(ctx, in); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Initialized %d sample products", len(sampleProducts)), nil
}
