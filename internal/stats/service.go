package stats

import (
	"context"
	"sort"
)

const topProductCount = 5

type Service interface {
	Report(ctx context.Context) (*Report, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Report(ctx context.Context) (*Report, error) {
	stats, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Statistics:      stats,
		TopProducts:     []TopProduct{},
		SalesByCategory: map[string]CategorySales{},
	}

	for _, st := range stats {
		report.TotalRevenue += st.TotalRevenue
		report.TotalSold += st.TotalSold
		report.TotalWeightSold += float64(st.TotalSold) * st.Weight

		cat := report.SalesByCategory[st.CategoryName]
		cat.Sold += st.TotalSold
		cat.Revenue += st.TotalRevenue
		report.SalesByCategory[st.CategoryName] = cat
	}

	bySold := make([]ProductStat, len(stats))
	copy(bySold, stats)
	sort.SliceStable(bySold, func(i, j int) bool {
		return bySold[i].TotalSold > bySold[j].TotalSold
	})

	for i, st := range bySold {
		if i == topProductCount {
			break
		}
		report.TopProducts = append(report.TopProducts, TopProduct{
			ProductID: st.ProductID,
			Title:     st.Title,
			Sold:      st.TotalSold,
			Revenue:   st.TotalRevenue,
		})
	}

	return report, nil
}
