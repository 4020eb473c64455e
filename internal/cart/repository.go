package cart

import (
	"context"
	"database/sql"
	"errors"

	"greenbasket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetItem(ctx context.Context, userID, productID int) (*CartItem, error)
	CreateItem(ctx context.Context, userID, productID, quantity int) error
	UpdateQuantity(ctx context.Context, itemID, quantity int) error
	DeleteItem(ctx context.Context, itemID int) error
	GetCart(ctx context.Context, userID int) ([]CartItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetItem(ctx context.Context, userID, productID int) (*CartItem, error) {
	var item CartItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, product_id, quantity, created_at
		FROM carts
		WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	).Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, userID, productID, quantity int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "CreateCartItem"),
		zap.Int("user_id", userID),
		zap.Int("product_id", productID),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO carts (user_id, product_id, quantity)
		VALUES ($1, $2, $3)`,
		userID, productID, quantity,
	)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return err
	}

	log.Debug("cart item created")
	return nil
}

func (r *repository) UpdateQuantity(ctx context.Context, itemID, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE carts
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2`,
		quantity, itemID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotInCart
	}

	return nil
}

func (r *repository) DeleteItem(ctx context.Context, itemID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, itemID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotInCart
	}

	return nil
}

func (r *repository) GetCart(ctx context.Context, userID int) ([]CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "GetCart"),
		zap.Int("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			c.id, c.user_id, c.product_id, c.quantity, c.created_at,
			p.title, p.price, p.img, p.weight
		FROM carts c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at`,
		userID,
	)
	if err != nil {
		log.Error("failed to query cart", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []CartItem{}
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&item.Title, &item.Price, &item.Img, &item.Weight,
		); err != nil {
			log.Error("failed to scan cart row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("cart fetched", zap.Int("items", len(items)))
	return items, nil
}
