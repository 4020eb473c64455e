package stats

import (
	"context"
	"database/sql"

	"greenbasket-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FetchAll(ctx context.Context) ([]ProductStat, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FetchAll(ctx context.Context) ([]ProductStat, error) {
	log := logger.FromCtx(ctx).With(zap.String("method", "FetchAllStats"))

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			st.id, st.product_id,
			p.title, COALESCE(c.name, 'Uncategorized'), p.price, p.weight,
			st.total_sold, st.total_revenue
		FROM sales_statistics st
		JOIN products p ON p.id = st.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY st.total_revenue DESC`,
	)
	if err != nil {
		log.Error("failed to query sales statistics", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stats := []ProductStat{}
	for rows.Next() {
		var s ProductStat
		if err := rows.Scan(
			&s.ID, &s.ProductID,
			&s.Title, &s.CategoryName, &s.Price, &s.Weight,
			&s.TotalSold, &s.TotalRevenue,
		); err != nil {
			log.Error("failed to scan statistics row", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
