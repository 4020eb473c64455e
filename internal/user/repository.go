package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"greenbasket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, email, password, role string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	GetProfile(ctx context.Context, id int, orderLimit int) (*Profile, error)
	Update(ctx context.Context, params UpdateUserParams) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, password, role string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password, role, bonus_points)
		 VALUES ($1, $2, $3, 0)
		 RETURNING id, email, password, role, bonus_points, created_at`,
		email, password, role,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.BonusPoints, &u.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, role, bonus_points, phone_number, address, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.BonusPoints, &u.PhoneNumber, &u.Address, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, role, bonus_points, phone_number, address, created_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.BonusPoints, &u.PhoneNumber, &u.Address, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

// GetProfile loads a user together with their most recent orders.
// orderLimit <= 0 means the full history.
func (r *repository) GetProfile(ctx context.Context, id int, orderLimit int) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "GetProfile"),
		zap.Int("user_id", id),
	)

	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, status, final_amount, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	args := []any{id}
	if orderLimit > 0 {
		query += " LIMIT $2"
		args = append(args, orderLimit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query order history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	p := &Profile{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		BonusPoints: u.BonusPoints,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
		Orders:      []OrderSummary{},
	}

	for rows.Next() {
		var o OrderSummary
		if err := rows.Scan(&o.ID, &o.Status, &o.FinalAmount, &o.CreatedAt); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		p.Orders = append(p.Orders, o)
	}

	return p, rows.Err()
}

func (r *repository) Update(ctx context.Context, params UpdateUserParams) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "UpdateUser"),
		zap.Int("user_id", params.UserID),
	)

	set := []string{}
	args := []any{}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if params.Email != nil {
		add("email", *params.Email)
	}
	if params.PhoneNumber != nil {
		add("phone_number", *params.PhoneNumber)
	}
	if params.Address != nil {
		add("address", *params.Address)
	}
	if params.Password != nil {
		add("password", *params.Password)
	}

	if len(set) == 0 {
		return r.FindByID(ctx, params.UserID)
	}

	args = append(args, params.UserID)
	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE id = $%d
		RETURNING id, email, password, role, bonus_points, phone_number, address, created_at`,
		strings.Join(set, ", "), len(args),
	)

	var u User
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.BonusPoints, &u.PhoneNumber, &u.Address, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	if err != nil {
		log.Error("failed to update user", zap.Error(err))
	}

	return u, err
}
