package cart

import (
	"context"
	"errors"

	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	// AddToCart adds one unit of the product, bounded by live stock.
	AddToCart(ctx context.Context, userID, productID int) error
	// RemoveFromCart removes one unit; the row disappears at zero.
	RemoveFromCart(ctx context.Context, userID, productID int) error
	GetCart(ctx context.Context, userID int) ([]CartItem, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) AddToCart(ctx context.Context, userID, productID int) error {
	log := logger.FromCtx(ctx).With(
		zap.Int("user_id", userID),
		zap.Int("product_id", productID),
	)

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	item, err := s.repo.GetItem(ctx, userID, productID)
	if err != nil {
		return err
	}

	if item != nil {
		if item.Quantity >= p.Quantity {
			return ErrInsufficientStock
		}
		log.Debug("incrementing cart quantity", zap.Int("quantity", item.Quantity+1))
		return s.repo.UpdateQuantity(ctx, item.ID, item.Quantity+1)
	}

	if p.Quantity <= 0 {
		return ErrInsufficientStock
	}

	return s.repo.CreateItem(ctx, userID, productID, 1)
}

func (s *service) RemoveFromCart(ctx context.Context, userID, productID int) error {
	item, err := s.repo.GetItem(ctx, userID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotInCart
	}

	if item.Quantity > 1 {
		return s.repo.UpdateQuantity(ctx, item.ID, item.Quantity-1)
	}

	return s.repo.DeleteItem(ctx, item.ID)
}

func (s *service) GetCart(ctx context.Context, userID int) ([]CartItem, error) {
	return s.repo.GetCart(ctx, userID)
}
