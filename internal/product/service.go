package product

import (
	"context"
	"errors"
)

var ErrMissingFields = errors.New("title, shop, category, quantity and weight are required")

type Service interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	if params.Title == "" || params.ShopID == 0 || params.CategoryID == 0 {
		return nil, ErrMissingFields
	}
	if params.Quantity < 0 || params.Weight < 0 {
		return nil, ErrMissingFields
	}

	if params.Img == "" {
		params.Img = "default-product-image.png"
	}

	return s.repo.Create(ctx, params)
}

func (s *service) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
