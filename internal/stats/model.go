package stats

// ProductStat is one sales_statistics row joined with its product.
type ProductStat struct {
	ID           int     `json:"id"`
	ProductID    int     `json:"productId"`
	Title        string  `json:"title"`
	CategoryName string  `json:"categoryName"`
	Price        float64 `json:"price"`
	Weight       float64 `json:"weight"`
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type TopProduct struct {
	ProductID int     `json:"id"`
	Title     string  `json:"title"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}

type CategorySales struct {
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}

// Report is the storefront's statistics dashboard payload.
type Report struct {
	TotalRevenue    float64                  `json:"totalRevenue"`
	TotalSold       int                      `json:"totalSold"`
	TotalWeightSold float64                  `json:"totalWeightSold"`
	Statistics      []ProductStat            `json:"statistics"`
	TopProducts     []TopProduct             `json:"topProducts"`
	SalesByCategory map[string]CategorySales `json:"salesByCategory"`
}
