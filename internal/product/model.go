package product

type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight"`
	Img         string  `json:"img"`
	ShopID      int     `json:"shopId"`
	CategoryID  int     `json:"categoryId"`

	ShopName     *string `json:"shopName,omitempty"`
	ShopAddress  *string `json:"shopAddress,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
}

type CreateProductParams struct {
	Title       string
	Description string
	Price       float64
	Quantity    int
	Weight      float64
	Img         string
	ShopID      int
	CategoryID  int
}

type UpdateProductParams struct {
	ID          int
	Title       *string
	Description *string
	Price       *float64
	Quantity    *int
	Weight      *float64
	Img         *string
	ShopID      *int
	CategoryID  *int
}
