package order

import (
	"context"
	"strings"

	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	// Checkout converts the validated line items into a persisted
	// order, applying the loyalty policy and clearing the cart, all
	// atomically.
	Checkout(ctx context.Context, params CheckoutParams) (*Receipt, error)
	GetOrdersByUser(ctx context.Context, userID int) ([]OrderSummary, error)
}

type service struct {
	repo     Repository
	checkout metrics.CheckoutMetrics
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Checkout(ctx context.Context, params CheckoutParams) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int("user_id", params.UserID),
		zap.Int("item_count", len(params.Items)),
	)

	if err := validateCheckout(params); err != nil {
		return nil, err
	}

	timer := metrics.StartTimer()
	order, earned, err := s.repo.CheckoutTx(ctx, params)
	if err != nil {
		s.checkout.Failed.Inc()
		return nil, err
	}

	s.checkout.Completed.Inc()
	log.Info("checkout completed",
		zap.Int("order_id", order.ID),
		zap.Duration("duration", timer.Duration()),
		zap.Uint64("checkouts_completed", s.checkout.Completed.Load()),
	)

	return &Receipt{Order: order, BonusPointsEarned: earned}, nil
}

// validateCheckout rejects malformed input before any persistence
// step runs.
func validateCheckout(params CheckoutParams) error {
	if len(params.Items) == 0 {
		return ErrEmptyOrder
	}
	for _, item := range params.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	if strings.TrimSpace(params.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}

func (s *service) GetOrdersByUser(ctx context.Context, userID int) ([]OrderSummary, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}
