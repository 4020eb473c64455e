package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"greenbasket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// CheckoutTx runs the whole order-fulfillment workflow in one
	// database transaction and returns the created order plus the
	// bonus points earned on it.
	CheckoutTx(ctx context.Context, params CheckoutParams) (*Order, int, error)
	GetOrdersByUser(ctx context.Context, userID int) ([]OrderSummary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CheckoutTx(ctx context.Context, params CheckoutParams) (*Order, int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "CheckoutTx"),
		zap.Int("user_id", params.UserID),
		zap.Int("item_count", len(params.Items)),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, 0, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	// Lock the buyer's row for the duration of the transaction so
	// concurrent checkouts by the same user cannot race on the
	// loyalty balance.
	var balance int
	err = tx.QueryRowContext(ctx,
		`SELECT bonus_points FROM users WHERE id = $1 FOR UPDATE`,
		params.UserID,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrUserNotFound
	}
	if err != nil {
		log.Error("failed to load user", zap.Error(err))
		return nil, 0, err
	}

	totalAmount := OrderTotal(params.Items)
	used, finalAmount := RedeemBonusPoints(totalAmount, balance, params.UseBonusPoints)

	if used > 0 {
		if _, err = tx.ExecContext(ctx,
			`UPDATE users SET bonus_points = bonus_points - $1 WHERE id = $2`,
			used, params.UserID,
		); err != nil {
			log.Error("failed to redeem bonus points", zap.Error(err))
			return nil, 0, err
		}
	}

	order := &Order{
		UserID:          params.UserID,
		Address:         params.Address,
		Status:          StatusProcessing,
		TotalAmount:     totalAmount,
		UsedBonusPoints: used,
		FinalAmount:     finalAmount,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, address, status, total_amount, used_bonus_points, final_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		order.UserID, order.Address, order.Status,
		order.TotalAmount, order.UsedBonusPoints, order.FinalAmount,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, 0, err
	}

	for _, item := range params.Items {
		var itemID int
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price, weight)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.ID, item.ProductID, item.Quantity, item.Price, item.Weight,
		).Scan(&itemID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, 0, err
		}

		order.Items = append(order.Items, OrderItem{
			ID:        itemID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Weight:    item.Weight,
		})

		// Lifetime per-product sales roll-up. One row per product,
		// only ever incremented.
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO sales_statistics (product_id, total_sold, total_revenue)
			VALUES ($1, $2, $3)
			ON CONFLICT (product_id) DO UPDATE
			SET total_sold = sales_statistics.total_sold + EXCLUDED.total_sold,
			    total_revenue = sales_statistics.total_revenue + EXCLUDED.total_revenue`,
			item.ProductID, item.Quantity, item.Price*float64(item.Quantity),
		); err != nil {
			log.Error("failed to upsert sales statistics",
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, 0, err
		}

		// Guarded deduct: the predicate keeps stock from ever going
		// negative when two checkouts race on the same product.
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET quantity = quantity - $1
			WHERE id = $2 AND quantity >= $1`,
			item.Quantity, item.ProductID,
		)
		if err != nil {
			log.Error("failed to deduct stock",
				zap.Int("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, 0, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, 0, err
		}
		if affected == 0 {
			log.Warn("insufficient stock",
				zap.Int("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
			)
			return nil, 0, fmt.Errorf("%w for product %d", ErrInsufficientStock, item.ProductID)
		}
	}

	// Checkout always clears the whole cart, not just purchased items.
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM carts WHERE user_id = $1`,
		params.UserID,
	); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, 0, err
	}

	earned := EarnedBonusPoints(finalAmount)
	if _, err = tx.ExecContext(ctx,
		`UPDATE users SET bonus_points = bonus_points + $1 WHERE id = $2`,
		earned, params.UserID,
	); err != nil {
		log.Error("failed to accrue bonus points", zap.Error(err))
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return nil, 0, err
	}

	committed = true
	log.Info("checkout transaction committed",
		zap.Int("order_id", order.ID),
		zap.Float64("total_amount", totalAmount),
		zap.Int("used_bonus_points", used),
		zap.Int("bonus_points_earned", earned),
	)

	return order, earned, nil
}

func (r *repository) GetOrdersByUser(ctx context.Context, userID int) ([]OrderSummary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "GetOrdersByUser"),
		zap.Int("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, status, final_amount, created_at, address
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []OrderSummary{}
	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.ID, &o.Status, &o.FinalAmount, &o.CreatedAt, &o.Address); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("orders fetched", zap.Int("count", len(orders)))
	return orders, nil
}
