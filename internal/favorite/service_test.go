package favorite

import (
	"context"
	"testing"

	"greenbasket-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Exists(ctx context.Context, userID, productID int) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, userID, productID int) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, productID int) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, userID int) ([]Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Favorite), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, params product.CreateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, params product.UpdateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown product", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo)

		productRepo.On("GetByID", mock.Anything, 99).Return(nil, product.ErrProductNotFound)

		assert.ErrorIs(t, svc.Add(ctx, 7, 99), ErrProductNotFound)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo)

		productRepo.On("GetByID", mock.Anything, 3).Return(&product.Product{ID: 3}, nil)
		repo.On("Exists", mock.Anything, 7, 3).Return(true, nil)

		assert.ErrorIs(t, svc.Add(ctx, 7, 3), ErrAlreadyFavorite)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo)

		productRepo.On("GetByID", mock.Anything, 3).Return(&product.Product{ID: 3}, nil)
		repo.On("Exists", mock.Anything, 7, 3).Return(false, nil)
		repo.On("Create", mock.Anything, 7, 3).Return(nil)

		assert.NoError(t, svc.Add(ctx, 7, 3))
		repo.AssertExpectations(t)
	})
}

func TestService_Remove(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockProductRepository))

	repo.On("Delete", mock.Anything, 7, 3).Return(ErrNotInFavorites)

	assert.ErrorIs(t, svc.Remove(context.Background(), 7, 3), ErrNotInFavorites)
}
