package shop

import (
	"context"
	"database/sql"
	"errors"

	"greenbasket-be/internal/logger"

	"go.uber.org/zap"
)

var ErrShopNotFound = errors.New("shop not found")

type Repository interface {
	List(ctx context.Context) ([]Shop, error)
	Create(ctx context.Context, name string, address *string) (*Shop, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Shop, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address FROM shops ORDER BY name`)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query shops", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	shops := []Shop{}
	for rows.Next() {
		var s Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Address); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}

	return shops, rows.Err()
}

func (r *repository) Create(ctx context.Context, name string, address *string) (*Shop, error) {
	var s Shop
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO shops (name, address) VALUES ($1, $2) RETURNING id, name, address`,
		name, address,
	).Scan(&s.ID, &s.Name, &s.Address)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert shop",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, err
	}

	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrShopNotFound
	}

	return nil
}
