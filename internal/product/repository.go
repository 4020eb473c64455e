package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"greenbasket-be/internal/logger"

	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("product not found")

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productSelect = `
	SELECT
		p.id, p.title, p.description, p.price, p.quantity, p.weight, p.img,
		p.shop_id, p.category_id,
		s.name, s.address,
		c.name
	FROM products p
	LEFT JOIN shops s ON s.id = p.shop_id
	LEFT JOIN categories c ON c.id = p.category_id`

func scanProduct(row interface{ Scan(...any) error }, p *Product) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Quantity, &p.Weight, &p.Img,
		&p.ShopID, &p.CategoryID,
		&p.ShopName, &p.ShopAddress,
		&p.CategoryName,
	)
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "ListProducts"))

	rows, err := r.db.QueryContext(ctx, productSelect+` ORDER BY p.id`)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	var p Product
	err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id), &p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "CreateProduct"),
		zap.String("title", params.Title),
	)

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (title, description, price, quantity, weight, img, shop_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		params.Title, params.Description, params.Price, params.Quantity,
		params.Weight, params.Img, params.ShopID, params.CategoryID,
	).Scan(&id)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Int("product_id", id))
	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	set := []string{}
	args := []any{}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if params.Title != nil {
		add("title", *params.Title)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.Quantity != nil {
		add("quantity", *params.Quantity)
	}
	if params.Weight != nil {
		add("weight", *params.Weight)
	}
	if params.Img != nil {
		add("img", *params.Img)
	}
	if params.ShopID != nil {
		add("shop_id", *params.ShopID)
	}
	if params.CategoryID != nil {
		add("category_id", *params.CategoryID)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, params.ID)
	}

	args = append(args, params.ID)
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return nil, err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	return r.GetByID(ctx, params.ID)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
