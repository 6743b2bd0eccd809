package service

import (
	"context"
	"errors"

	"github.com/ridloal/go-inventory-service/internal/product/domain"
	"github.com/ridloal/go-inventory-service/internal/product/repository"
)

var ErrMissingFields = errors.New("missing required fields")

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req domain.ProductRequest) error
	DeleteProduct(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type productServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Description: req.Description,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id int64, req domain.ProductRequest) error {
	// Updates replace every mutable column, so the same presence rules as
	// create apply here.
	if err := validateProductRequest(req); err != nil {
		return err
	}

	product := &domain.Product{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Description: req.Description,
	}
	return s.repo.UpdateProduct(ctx, product)
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *productServiceImpl) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.repo.GetStats(ctx)
}

// validateProductRequest checks field presence only. Zero is a legal quantity
// and price, so absence is signalled by nil pointers from the JSON layer.
func validateProductRequest(req domain.ProductRequest) error {
	if req.Name == "" || req.Category == "" || req.Quantity == nil || req.Price == nil {
		return ErrMissingFields
	}
	return nil
}
