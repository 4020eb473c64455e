package cart

import "time"

// CartItem is one row of a user's cart joined with the product data
// the storefront renders.
type CartItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`

	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Img    string  `json:"img"`
	Weight float64 `json:"weight"`
}
