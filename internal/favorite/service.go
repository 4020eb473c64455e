package favorite

import (
	"context"
	"errors"

	"greenbasket-be/internal/product"
)

type Service interface {
	Add(ctx context.Context, userID, productID int) error
	Remove(ctx context.Context, userID, productID int) error
	List(ctx context.Context, userID int) ([]Favorite, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) Add(ctx context.Context, userID, productID int) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	exists, err := s.repo.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFavorite
	}

	return s.repo.Create(ctx, userID, productID)
}

func (s *service) Remove(ctx context.Context, userID, productID int) error {
	return s.repo.Delete(ctx, userID, productID)
}

func (s *service) List(ctx context.Context, userID int) ([]Favorite, error) {
	return s.repo.List(ctx, userID)
}
