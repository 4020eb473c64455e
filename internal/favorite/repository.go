package favorite

import (
	"context"
	"database/sql"

	"greenbasket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Exists(ctx context.Context, userID, productID int) (bool, error)
	Create(ctx context.Context, userID, productID int) error
	Delete(ctx context.Context, userID, productID int) error
	List(ctx context.Context, userID int) ([]Favorite, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Exists(ctx context.Context, userID, productID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND product_id = $2)`,
		userID, productID,
	).Scan(&exists)
	return exists, err
}

func (r *repository) Create(ctx context.Context, userID, productID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, product_id) VALUES ($1, $2)`,
		userID, productID,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert favorite",
			zap.Int("user_id", userID),
			zap.Int("product_id", productID),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) Delete(ctx context.Context, userID, productID int) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotInFavorites
	}

	return nil
}

func (r *repository) List(ctx context.Context, userID int) ([]Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			f.id, f.user_id, f.product_id, f.created_at,
			p.title, p.price, p.img, p.weight, p.quantity
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query favorites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	favorites := []Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.ProductID, &f.CreatedAt,
			&f.Title, &f.Price, &f.Img, &f.Weight, &f.Quantity,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}
