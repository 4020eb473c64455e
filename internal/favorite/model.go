package favorite

import "time"

type Favorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ProductID int       `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`

	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"`
}
