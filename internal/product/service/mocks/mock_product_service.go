package mocks

import (
	"context"

	pDomain "github.com/ridloal/go-inventory-service/internal/product/domain"

	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]pDomain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) GetProduct(ctx context.Context, id int64) (*pDomain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req pDomain.ProductRequest) (*pDomain.Product, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id int64, req pDomain.ProductRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) GetStats(ctx context.Context) (*pDomain.Stats, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}
